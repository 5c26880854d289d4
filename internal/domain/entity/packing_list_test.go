package entity

import (
	"encoding/json"
	"testing"
)

func sampleContent() PackingListContent {
	return PackingListContent{
		{Name: "Clothing", Items: []PackingItem{
			{Name: "T-shirt", Quantity: 5},
			{Name: "Rain jacket", Quantity: 1},
		}},
		{Name: "Electronics", Items: []PackingItem{
			{Name: "Charger", Quantity: 1},
		}},
		{Name: "Toiletries", Items: []PackingItem{}},
	}
}

func TestContentJSONRoundTripPreservesOrder(t *testing.T) {
	original := sampleContent()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded PackingListContent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("expected %d categories, got %d", len(original), len(decoded))
	}
	for i := range original {
		if decoded[i].Name != original[i].Name {
			t.Errorf("category %d: expected %q, got %q", i, original[i].Name, decoded[i].Name)
		}
	}
}

func TestContentMarshalRendersObject(t *testing.T) {
	data, err := json.Marshal(PackingListContent{
		{Name: "Camping", Items: []PackingItem{{Name: "Tent", Quantity: 1}}},
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"Camping":[{"name":"Tent","quantity":1,"packed":false}]}`
	if string(data) != want {
		t.Errorf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}

func TestContentMarshalNilItemsAsEmptyArray(t *testing.T) {
	data, err := json.Marshal(PackingListContent{{Name: "Misc"}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"Misc":[]}` {
		t.Errorf("expected empty array for nil items, got %s", data)
	}
}

func TestContentUnmarshalRejectsNonObject(t *testing.T) {
	var content PackingListContent
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &content); err == nil {
		t.Error("expected error for non-object content")
	}
}

func TestContentScanValueRoundTrip(t *testing.T) {
	original := sampleContent()

	value, err := original.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}

	var scanned PackingListContent
	if err := scanned.Scan([]byte(value.(string))); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(scanned) != len(original) || scanned[0].Name != "Clothing" {
		t.Errorf("scan round trip lost content: %v", scanned)
	}

	var fromNil PackingListContent
	if err := fromNil.Scan(nil); err != nil || fromNil != nil {
		t.Errorf("expected nil content from nil column, got %v (%v)", fromNil, err)
	}
}

func TestCategoryLookup(t *testing.T) {
	content := sampleContent()

	items, ok := content.Category("Electronics")
	if !ok || len(items) != 1 {
		t.Errorf("expected Electronics with 1 item, got %v (%v)", items, ok)
	}
	if _, ok := content.Category("Missing"); ok {
		t.Error("unexpected category hit")
	}
	if content.ItemCount() != 3 {
		t.Errorf("expected 3 items, got %d", content.ItemCount())
	}
}
