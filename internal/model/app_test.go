package model

import (
	"testing"
	"time"
)

func TestAppPatch_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(AppPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}

	name := "x"
	if (AppPatch{Name: &name}).IsEmpty() {
		t.Error("patch with name should not be empty")
	}

	live := false
	if (AppPatch{IsLive: &live}).IsEmpty() {
		t.Error("patch with is_live should not be empty")
	}
}

func TestAppPatch_Apply_PresentFieldsOnly(t *testing.T) {
	t.Parallel()

	app := &App{
		Name:        "Original",
		Description: "original description",
		URL:         "https://original.example.com",
		Category:    "AI",
		IsLive:      true,
		CreatedAt:   time.Now(),
	}

	category := "Automation"
	live := false
	patch := AppPatch{Category: &category, IsLive: &live}

	patch.Apply(app)

	if app.Category != "Automation" {
		t.Errorf("Category = %q, want Automation", app.Category)
	}
	if app.IsLive {
		t.Error("IsLive should be false after patch")
	}
	if app.Name != "Original" {
		t.Errorf("Name should be untouched, got %q", app.Name)
	}
	if app.Description != "original description" {
		t.Errorf("Description should be untouched, got %q", app.Description)
	}
	if app.URL != "https://original.example.com" {
		t.Errorf("URL should be untouched, got %q", app.URL)
	}
}

func TestAppPatch_Apply_ExplicitClear(t *testing.T) {
	t.Parallel()

	app := &App{
		Name:        "Original",
		Description: "to be cleared",
		Icon:        "rocket",
	}

	empty := ""
	patch := AppPatch{Description: &empty, Icon: &empty}

	patch.Apply(app)

	if app.Description != "" {
		t.Errorf("Description should be cleared, got %q", app.Description)
	}
	if app.Icon != "" {
		t.Errorf("Icon should be cleared, got %q", app.Icon)
	}
	if app.Name != "Original" {
		t.Errorf("Name should be untouched, got %q", app.Name)
	}
}

func TestAppPatch_Apply_Empty(t *testing.T) {
	t.Parallel()

	app := &App{Name: "Original", IsLive: true}
	before := *app

	(AppPatch{}).Apply(app)

	if *app != before {
		t.Errorf("empty patch mutated app: got %+v, want %+v", *app, before)
	}
}
