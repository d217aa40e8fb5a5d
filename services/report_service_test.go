package services

import (
	"fmt"
	"testing"

	"github.com/KentLacno/ccl-reservation-system/entity"
)

func TestQuantityReportZeroInitialized(t *testing.T) {
	db := setupDB(t)
	catalog := newCatalogService(db)
	reports := newReportService(db)

	form := createForm(t, db, entity.CategoryLunch, "2024-W05", true)
	a := createFoodItem(t, db, entity.CategoryLunch, "Chicken Adobo", 50)
	b := createFoodItem(t, db, entity.CategoryLunch, "Pork Sinigang", 80)
	if _, err := catalog.SetOption(form.ID, 1, []uint{a.ID, b.ID}); err != nil {
		t.Fatalf("SetOption: %v", err)
	}

	count, err := reports.QuantityReport(form.ID)
	if err != nil {
		t.Fatalf("QuantityReport: %v", err)
	}

	monday := count["monday"]
	if len(monday) != 2 || monday["Chicken Adobo"] != 0 || monday["Pork Sinigang"] != 0 {
		t.Errorf("monday = %v, want both items zeroed", monday)
	}
	if count["total"]["Chicken Adobo"] != 0 || count["total"]["Pork Sinigang"] != 0 {
		t.Errorf("total = %v, want zeroed", count["total"])
	}
	if len(count["tuesday"]) != 0 {
		t.Errorf("tuesday = %v, want empty (no option published)", count["tuesday"])
	}
}

func TestQuantityReportCountsSelections(t *testing.T) {
	db := setupDB(t)
	catalog := newCatalogService(db)
	orders := newOrderService(db)
	reports := newReportService(db)

	form := createForm(t, db, entity.CategoryLunch, "2024-W05", true)
	adobo := createFoodItem(t, db, entity.CategoryLunch, "Chicken Adobo", 50)
	sinigang := createFoodItem(t, db, entity.CategoryLunch, "Pork Sinigang", 80)
	if _, err := catalog.SetOption(form.ID, 1, []uint{adobo.ID, sinigang.ID}); err != nil {
		t.Fatalf("SetOption: %v", err)
	}
	if _, err := catalog.SetOption(form.ID, 3, []uint{adobo.ID}); err != nil {
		t.Fatalf("SetOption: %v", err)
	}

	maria := createProfile(t, db, "maria", 0)
	jose := createProfile(t, db, "jose", 0)
	if _, err := orders.Submit(maria, form, map[string]string{
		fmt.Sprintf("%d-1-quantity", adobo.ID): "2",
		fmt.Sprintf("%d-3-quantity", adobo.ID): "1",
	}); err != nil {
		t.Fatalf("Submit maria: %v", err)
	}
	if _, err := orders.Submit(jose, form, map[string]string{
		fmt.Sprintf("%d-1-quantity", adobo.ID):    "1",
		fmt.Sprintf("%d-1-quantity", sinigang.ID): "3",
	}); err != nil {
		t.Fatalf("Submit jose: %v", err)
	}

	count, err := reports.QuantityReport(form.ID)
	if err != nil {
		t.Fatalf("QuantityReport: %v", err)
	}

	if got := count["monday"]["Chicken Adobo"]; got != 3 {
		t.Errorf("monday adobo = %d, want 3", got)
	}
	if got := count["monday"]["Pork Sinigang"]; got != 3 {
		t.Errorf("monday sinigang = %d, want 3", got)
	}
	if got := count["wednesday"]["Chicken Adobo"]; got != 1 {
		t.Errorf("wednesday adobo = %d, want 1", got)
	}
	if got := count["total"]["Chicken Adobo"]; got != 4 {
		t.Errorf("total adobo = %d, want 4", got)
	}
	if got := count["total"]["Pork Sinigang"]; got != 3 {
		t.Errorf("total sinigang = %d, want 3", got)
	}
}

func TestOrdersByWeekday(t *testing.T) {
	db := setupDB(t)
	orders := newOrderService(db)
	reports := newReportService(db)

	form := createForm(t, db, entity.CategoryLunch, "2024-W05", true)
	item := createFoodItem(t, db, entity.CategoryLunch, "Chicken Adobo", 50)
	profile := createProfile(t, db, "maria", 0)

	if _, err := orders.Submit(profile, form, map[string]string{
		fmt.Sprintf("%d-1-quantity", item.ID): "1",
		fmt.Sprintf("%d-5-quantity", item.ID): "2",
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	all, err := reports.OrdersForForm(form.ID)
	if err != nil {
		t.Fatalf("OrdersForForm: %v", err)
	}
	display := reports.OrdersByWeekday(all)

	if len(display["monday"]) != 1 || len(display["friday"]) != 1 {
		t.Errorf("monday=%d friday=%d reservations, want 1 each", len(display["monday"]), len(display["friday"]))
	}
	for _, day := range []string{"tuesday", "wednesday", "thursday"} {
		if len(display[day]) != 0 {
			t.Errorf("%s has %d reservations, want 0", day, len(display[day]))
		}
	}
}
