package keyvalue

import (
	"testing"
)

func TestBuild(t *testing.T) {
	expected := `{"a":"1","b":null}`

	m := Build([][]string{{"a", "1"}, {"", "x"}, {"b"}})

	b, err := m.JSON()
	if err != nil {
		t.Fatalf("Unexpected error serialising map (%v)", err)
	}

	if string(b) != expected {
		t.Errorf("Incorrect JSON\n   expected: %s\n   got:      %s\n", expected, b)
	}
}

func TestBuildSkipsEmptyKeys(t *testing.T) {
	m := Build([][]string{{"", "x"}, {}, {"", ""}})

	if len(m) != 0 {
		t.Errorf("Expected empty map, got %v", m)
	}
}

func TestBuildLastWriteWins(t *testing.T) {
	m := Build([][]string{{"k", "1"}, {"k", "2"}, {"j"}, {"j", "3"}})

	if v := m["k"]; v == nil || *v != "2" {
		t.Errorf("Incorrect value for 'k' - expected:%v, got:%v", "2", v)
	}

	if v := m["j"]; v == nil || *v != "3" {
		t.Errorf("Incorrect value for 'j' - expected:%v, got:%v", "3", v)
	}
}

func TestBuildKeepsEmptyValues(t *testing.T) {
	m := Build([][]string{{"k", ""}, {"j", "x", "ignored"}})

	b, err := m.JSON()
	if err != nil {
		t.Fatalf("Unexpected error serialising map (%v)", err)
	}

	if string(b) != `{"j":"x","k":""}` {
		t.Errorf("Incorrect JSON: %s", b)
	}
}

func TestJSONIsStable(t *testing.T) {
	rows := [][]string{{"zeta", "1"}, {"alpha", "2"}, {"mid"}, {"beta", "3"}}

	first, err := Build(rows).JSON()
	if err != nil {
		t.Fatalf("Unexpected error serialising map (%v)", err)
	}

	for i := 0; i < 10; i++ {
		next, err := Build(rows).JSON()
		if err != nil {
			t.Fatalf("Unexpected error serialising map (%v)", err)
		}

		if string(next) != string(first) {
			t.Fatalf("Unstable JSON\n   first: %s\n   next:  %s\n", first, next)
		}
	}

	if string(first) != `{"alpha":"2","beta":"3","mid":null,"zeta":"1"}` {
		t.Errorf("Incorrect JSON: %s", first)
	}
}

func TestEmptyMapJSON(t *testing.T) {
	b, err := Build(nil).JSON()
	if err != nil {
		t.Fatalf("Unexpected error serialising map (%v)", err)
	}

	if string(b) != `{}` {
		t.Errorf("Incorrect JSON - expected:%v, got:%s", `{}`, b)
	}
}
