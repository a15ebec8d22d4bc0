package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/termsnake/internal/core"
)

func TestSwapPlacer(t *testing.T) {
	b, _ := core.NewBounds(70, 30)
	got, ok := SwapPlacer{}.Place(core.Pt(17, 10), NewSnake(core.Pt(35, 15), core.DirUp), b)
	if !ok || got != core.Pt(10, 17) {
		t.Errorf("Place() = %v, %v, expected (10,17), true", got, ok)
	}
}

func TestRandomPlacerValidity(t *testing.T) {
	b, _ := core.NewBounds(12, 8)
	s := snakeOf(core.DirRight, core.Pt(3, 4), core.Pt(4, 4), core.Pt(5, 4), core.Pt(6, 4))
	p := NewRandomPlacer(999)

	for i := 0; i < 200; i++ {
		food, ok := p.Place(core.Pt(6, 4), s, b)
		if !ok {
			t.Fatal("Place() found no cell on a mostly empty board")
		}
		if !b.Contains(food) {
			t.Errorf("food placed outside the interior at %v", food)
		}
		if s.Occupies(food) {
			t.Errorf("food placed on the snake at %v", food)
		}
	}
}

func TestRandomPlacerDeterminism(t *testing.T) {
	b, _ := core.NewBounds(40, 20)
	s := NewSnake(b.Center(), core.DirUp)
	p1 := NewRandomPlacer(42)
	p2 := NewRandomPlacer(42)

	for i := 0; i < 20; i++ {
		f1, _ := p1.Place(core.Point{}, s, b)
		f2, _ := p2.Place(core.Point{}, s, b)
		if f1 != f2 {
			t.Fatalf("placement %d differs: %v vs %v", i, f1, f2)
		}
	}
}

func TestRandomPlacerFullBoard(t *testing.T) {
	b, _ := core.NewBounds(4, 3) // interior is (2,2) and (3,2)
	s := snakeOf(core.DirRight, core.Pt(2, 2), core.Pt(3, 2))
	if _, ok := NewRandomPlacer(1).Place(core.Pt(3, 2), s, b); ok {
		t.Error("Place() should fail when the snake fills the board")
	}
}

func TestPlacerFor(t *testing.T) {
	if p, err := PlacerFor(FoodSwap, 0); err != nil {
		t.Errorf("PlacerFor(swap) failed: %v", err)
	} else if _, ok := p.(SwapPlacer); !ok {
		t.Errorf("PlacerFor(swap) = %T, expected SwapPlacer", p)
	}

	if p, err := PlacerFor(FoodRandom, 7); err != nil {
		t.Errorf("PlacerFor(random) failed: %v", err)
	} else if _, ok := p.(*RandomPlacer); !ok {
		t.Errorf("PlacerFor(random) = %T, expected *RandomPlacer", p)
	}

	if _, err := PlacerFor("teleport", 0); !errors.Is(err, ErrUnknownFoodPolicy) {
		t.Errorf("PlacerFor(teleport) error = %v, expected ErrUnknownFoodPolicy", err)
	}
}
