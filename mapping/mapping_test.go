package mapping

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, s string) Object {
	t.Helper()
	var obj Object
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return obj
}

func TestProjectOmitsAbsentAttributes(t *testing.T) {
	src := decode(t, `{"reference": {"bookingID": "200127"}, "price": 100}`)

	out := Project(src, Table{
		{Attr: "id", Get: Path("reference", "bookingID")},
		{Attr: "price", Get: Path("price")},
		{Attr: "telephone", Get: Path("phone")},
		{Attr: "hotelName", Get: Path("hotel", "hotelName")},
	})

	want := Object{"id": "200127", "price": float64(100)}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
	if _, ok := out["telephone"]; ok {
		t.Error("absent attribute must be omitted")
	}
}

func TestProjectOutputKeysSubsetOfTable(t *testing.T) {
	src := decode(t, `{"a": 1, "b": 2, "c": 3}`)
	table := Table{
		{Attr: "x", Get: Path("a")},
		{Attr: "y", Get: Path("missing")},
	}

	out := Project(src, table)

	allowed := map[string]bool{"x": true, "y": true}
	for k := range out {
		if !allowed[k] {
			t.Errorf("unexpected output key %q", k)
		}
	}
}

func TestLookupMissingIntermediateNode(t *testing.T) {
	src := decode(t, `{"hotel": {"rooms": [{"code": "A"}]}}`)

	if v := Lookup(src, "hotel", "address", "city"); v != nil {
		t.Errorf("expected nil for missing path, got %v", v)
	}
	if v := Lookup(src, "hotel", "rooms", "code"); v != nil {
		t.Errorf("expected nil when traversing through an array, got %v", v)
	}
}

func TestLookupOr(t *testing.T) {
	src := decode(t, `{"data": {"options": []}}`)

	if v := LookupOr("fallback", src, "data", "missing"); v != "fallback" {
		t.Errorf("got %v", v)
	}
	if v := LookupOr("fallback", src, "data", "options"); v == "fallback" {
		t.Error("present value must win over default")
	}
}

func TestSliceAt(t *testing.T) {
	src := decode(t, `{"bookings": [{"id": 1}], "status": "OK"}`)

	list, ok := SliceAt(src, "bookings")
	if !ok || len(list) != 1 {
		t.Errorf("got %v ok=%v", list, ok)
	}

	if _, ok := SliceAt(src, "status"); ok {
		t.Error("non-array node must report false")
	}

	list, ok = SliceAt(src, "missing")
	if !ok || list != nil {
		t.Error("absent path must yield an empty, valid list")
	}
}

func TestProjectAllSkipsNonObjects(t *testing.T) {
	list := []any{
		Object{"code": "RM1"},
		"junk",
		Object{"code": "RM2"},
	}

	out := ProjectAll(list, Table{{Attr: "roomId", Get: Path("code")}})

	if len(out) != 2 {
		t.Fatalf("expected 2 projections, got %d", len(out))
	}
	if out[0]["roomId"] != "RM1" || out[1]["roomId"] != "RM2" {
		t.Errorf("got %v", out)
	}
}

func TestOmitAndPick(t *testing.T) {
	src := Object{"description": "City tax", "price": 12.5, "chargeType": "INCLUDE"}

	rest := Omit(src, "description", "price")
	if !reflect.DeepEqual(rest, Object{"chargeType": "INCLUDE"}) {
		t.Errorf("Omit got %v", rest)
	}
	if len(src) != 3 {
		t.Error("Omit must not modify the source")
	}

	picked := Pick(src, "price", "missing")
	if !reflect.DeepEqual(picked, Object{"price": 12.5}) {
		t.Errorf("Pick got %v", picked)
	}
}
