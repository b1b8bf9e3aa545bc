package discogs

import (
	"reflect"
	"testing"

	"github.com/AlexEneas/discogs-tagfix/internal/identity"
)

func TestBuildQueries_WithMix(t *testing.T) {
	id := identity.Identity{Artist: "Underworld", Title: "Born Slippy", Mix: "Nuxx"}

	got := BuildQueries(id)
	want := []string{"Underworld Born Slippy Nuxx", "Underworld Born Slippy"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildQueries() = %v, want %v", got, want)
	}
}

func TestBuildQueries_OriginalMixDropped(t *testing.T) {
	id := identity.Identity{Artist: "Faithless", Title: "Insomnia", Mix: "Original Mix"}

	got := BuildQueries(id)
	want := []string{"Faithless Insomnia"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildQueries() = %v, want %v", got, want)
	}
}

func TestBuildQueries_TitleOnlyFallback(t *testing.T) {
	id := identity.Identity{Title: "Halcyon"}

	got := BuildQueries(id)
	want := []string{"Halcyon"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildQueries() = %v, want %v", got, want)
	}
}

func TestBuildQueries_Empty(t *testing.T) {
	if got := BuildQueries(identity.Identity{}); len(got) != 0 {
		t.Errorf("BuildQueries(empty) = %v, want none", got)
	}
}

func TestBuildQueries_FoldsNonASCII(t *testing.T) {
	id := identity.Identity{Artist: "Röyksopp", Title: "Eple"}

	got := BuildQueries(id)
	want := []string{"Royksopp Eple"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildQueries() = %v, want %v", got, want)
	}
}
