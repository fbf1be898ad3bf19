package convert

import "testing"

func TestStrTo(t *testing.T) {
	if got := StrTo("12").MustInt(); got != 12 {
		t.Errorf("MustInt() = %d, want 12", got)
	}
	if got := StrTo("junk").MustInt(); got != 0 {
		t.Errorf("MustInt() on junk = %d, want 0", got)
	}
	if got := StrTo("9000000000").MustInt64(); got != 9000000000 {
		t.Errorf("MustInt64() = %d", got)
	}
}

func TestStructAssign(t *testing.T) {
	type src struct {
		Name string
		Age  int
	}
	type dst struct {
		Name string
		Age  int
		Note string
	}

	d := &dst{Note: "keep"}
	StructAssign(&src{Name: "herodotus", Age: 60}, d)

	if d.Name != "herodotus" || d.Age != 60 {
		t.Errorf("StructAssign() = %+v", d)
	}
	// 目标中源没有的字段保持不变
	if d.Note != "keep" {
		t.Errorf("Note = %q, want keep", d.Note)
	}
}

func TestStructToMap(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
		Count int    `json:"count"`
	}

	data := make(map[string]interface{})
	if err := StructToMap(&payload{Title: "notes", Count: 3}, data); err != nil {
		t.Fatal(err)
	}

	if data["title"] != "notes" {
		t.Errorf("title = %v", data["title"])
	}
	if v, ok := data["count"].(float64); !ok || v != 3 {
		t.Errorf("count = %v", data["count"])
	}
}
