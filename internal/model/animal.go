package model

// Trait and Color enumerate the flavor attributes shared by foxes and dogs.
// Values are stored as text in the database.
type Trait string

const (
	TraitQuick  Trait = "quick"
	TraitLazy   Trait = "lazy"
	TraitClever Trait = "clever"
	TraitOld    Trait = "old"
	TraitYoung  Trait = "young"
	TraitHungry Trait = "hungry"
	TraitSleepy Trait = "sleepy"
	TraitAngry  Trait = "angry"
	TraitHappy  Trait = "happy"
	TraitSad    Trait = "sad"
	TraitSlow   Trait = "slow"
	TraitSneaky Trait = "sneaky"
)

type Color string

const (
	ColorRed   Color = "red"
	ColorGreen Color = "green"
	ColorBlue  Color = "blue"
	ColorBlack Color = "black"
	ColorWhite Color = "white"
)

var (
	Traits = []Trait{
		TraitQuick, TraitLazy, TraitClever, TraitOld, TraitYoung,
		TraitHungry, TraitSleepy, TraitAngry, TraitHappy, TraitSad,
		TraitSlow, TraitSneaky,
	}
	Colors = []Color{ColorRed, ColorGreen, ColorBlue, ColorBlack, ColorWhite}
)

func (t Trait) Valid() bool {
	for _, known := range Traits {
		if t == known {
			return true
		}
	}
	return false
}

func (c Color) Valid() bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

type Fox struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Trait Trait  `json:"trait"`
	Color Color  `json:"color"`
}

type Dog struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Trait Trait  `json:"trait"`
	Color Color  `json:"color"`
}

// CreateAnimalRequest covers both fox and dog creation. Trait and color
// are optional; the server rolls random ones when they are omitted.
type CreateAnimalRequest struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Trait Trait  `json:"trait,omitempty"`
	Color Color  `json:"color,omitempty"`
}

// FoxDogLink records that a fox jumped over a dog.
type FoxDogLink struct {
	FoxID int64 `json:"fox_id"`
	DogID int64 `json:"dog_id"`
}
