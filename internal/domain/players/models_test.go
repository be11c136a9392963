package players

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"Position", "position"},
		{"TeamID", "team_id,omitempty"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestCreateTeamIDSerialization(t *testing.T) {
	raw, err := json.Marshal(Create{Name: "Joe", Position: DefaultPosition})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"name":"Joe","position":"QB"}` {
		t.Fatalf("expected team_id omitted, got %s", raw)
	}

	id := 3
	raw, err = json.Marshal(Create{Name: "Joe", Position: "RB", TeamID: &id})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"name":"Joe","position":"RB","team_id":3}` {
		t.Fatalf("expected numeric team_id, got %s", raw)
	}
}
