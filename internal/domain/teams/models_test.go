package teams

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"OwnerID", "owner_id,omitempty"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestCreateOmitsNilOwner(t *testing.T) {
	raw, err := json.Marshal(Create{Name: "Sharks"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"name":"Sharks"}` {
		t.Fatalf("expected owner_id omitted, got %s", raw)
	}
}

func TestTeamDecodesNullOwnerAsNil(t *testing.T) {
	var team Team
	if err := json.NewDecoder(strings.NewReader(`{"id":1,"name":"Sharks","owner_id":null}`)).Decode(&team); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if team.OwnerID != nil {
		t.Fatalf("expected nil owner id, got %d", *team.OwnerID)
	}
}

func TestIndexByID(t *testing.T) {
	idx := IndexByID([]Team{{ID: 1, Name: "Sharks"}, {ID: 2, Name: "Comets"}})
	if len(idx) != 2 || idx[2].Name != "Comets" {
		t.Fatalf("unexpected index %+v", idx)
	}
}
