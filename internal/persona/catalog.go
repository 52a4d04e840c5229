// Package persona assigns a reading archetype from aggregate statistics via an
// ordered rule table.
package persona

import "github.com/joshsymonds/shelf-wrapped/internal/model"

// The persona catalog. Entries are static; the classifier only ever selects
// one, never modifies it.
var (
	serialShelver = model.Persona{
		Name:           "Serial Shelver",
		Icon:           "🏗️",
		Description:    "Your to-be-read pile grew faster than you could climb it. Every sale, every recommendation, every pretty cover went straight to the shelf — reading them is a problem for future you.",
		Roast:          "You added more books this year than some people will read in a lifetime. Added. Not read.",
		PrimaryColor:   "#F59E0B",
		SecondaryColor: "#FDE68A",
		Tags:           []string{"#TBRTower", "#OneDayMaybe", "#BookHoarder"},
	}

	deepDiver = model.Persona{
		Name:           "Deep Diver",
		Icon:           "🐋",
		Description:    "You don't read many books, but the ones you pick could stop a door. Long, dense, immersive — you commit to a world and stay there until the lights go out.",
		Roast:          "Your friends finished ten books in the time it took you to finish one. Worth it, probably.",
		PrimaryColor:   "#1D4ED8",
		SecondaryColor: "#93C5FD",
		Tags:           []string{"#DoorStopper", "#OneBookAtATime", "#CommitmentReader"},
	}

	pageSprinter = model.Persona{
		Name:           "Page Sprinter",
		Icon:           "🏃",
		Description:    "Quantity is a strategy. You tear through short books at a pace that makes your reading app sweat, and you're not precious about whether every one of them lands.",
		Roast:          "Impressive numbers. Shame about all those three-star ratings.",
		PrimaryColor:   "#DC2626",
		SecondaryColor: "#FCA5A5",
		Tags:           []string{"#SpeedReader", "#NumbersGame", "#NextPlease"},
	}

	epicEnthusiast = model.Persona{
		Name:           "Epic Enthusiast",
		Icon:           "⚔️",
		Description:    "Long books, loved hard. You seek out sprawling stories and they keep paying off — high page counts and high ratings, a reader who found their genre and moved in.",
		Roast:          "Yes, we know, the thousand-page fantasy was 'actually a fast read.' Sure it was.",
		PrimaryColor:   "#7C3AED",
		SecondaryColor: "#C4B5FD",
		Tags:           []string{"#EpicFantasy", "#TheLongHaul", "#WorthEveryPage"},
	}

	easyToPlease = model.Persona{
		Name:           "Generous Star-Giver",
		Icon:           "⭐",
		Description:    "You love books, and books love you back. Your average rating says you either have impeccable taste in what you pick up, or you've never met a book you couldn't forgive.",
		Roast:          "A rating scale has five whole numbers and you use two of them.",
		PrimaryColor:   "#059669",
		SecondaryColor: "#6EE7B7",
		Tags:           []string{"#FiveStarsAgain", "#NoBadBooks", "#EasyAudience"},
	}

	balancedRealist = model.Persona{
		Name:           "Balanced Realist",
		Icon:           "⚖️",
		Description:    "No extremes here: a steady mix of lengths, genres, and honest ratings. You read what you want, when you want, and the statistics refuse to pin you down.",
		Roast:          "Congratulations on being statistically unremarkable in every direction at once.",
		PrimaryColor:   "#0891B2",
		SecondaryColor: "#A5F3FC",
		Tags:           []string{"#NoLabel", "#SteadyReader", "#JustRightAmount"},
	}
)
