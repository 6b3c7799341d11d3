package requirements

import (
	"regexp"
	"strconv"
	"strings"
)

// styleKeywords maps lowercase style keywords to canonical style names.
// First match wins; iteration order is fixed to keep parsing deterministic.
var styleKeywords = []struct{ keyword, style string }{
	{"ranch", "Ranch"},
	{"colonial", "Colonial"},
	{"victorian", "Victorian"},
	{"modern", "Modern"},
	{"contemporary", "Contemporary"},
	{"craftsman", "Craftsman"},
	{"cape cod", "Cape Cod"},
	{"mediterranean", "Mediterranean"},
	{"tudor", "Tudor"},
}

// specialRoomKeywords maps description phrases to special room tags.
// Several phrases can map to the same tag ("man den" → "den").
var specialRoomKeywords = []struct{ keyword, tag string }{
	{"gameroom", "gameroom"},
	{"game room", "gameroom"},
	{"man den", "den"},
	{"den", "den"},
	{"office", "office"},
	{"study", "study"},
	{"library", "library"},
	{"media room", "media_room"},
	{"home theater", "home_theater"},
	{"exercise room", "gym"},
	{"gym", "gym"},
	{"mudroom", "mudroom"},
	{"laundry", "laundry"},
	{"pantry", "pantry"},
}

// bathroomTypeKeywords maps description phrases to bathroom type tags.
var bathroomTypeKeywords = []struct{ keyword, tag string }{
	{"jack and jill", "jack_and_jill"},
	{"ensuite", "ensuite"},
	{"master bath", "master"},
	{"half bath", "half"},
	{"powder room", "powder"},
}

var (
	sqftRe     = regexp.MustCompile(`(\d+)\s*sq\s*ft`)
	bedroomRe  = regexp.MustCompile(`(\d+)\s*bed`)
	bathroomRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*bath`)
	garageRe   = regexp.MustCompile(`(\d+)\s*car\s*garage`)
)

// Parse extracts a structured requirements record from a natural-language
// house description. Fields that cannot be extracted keep their defaults.
//
// Extraction is purely lexical: lowercased keyword and regex matching, no
// model calls and no I/O. Identical input always yields an identical record.
func Parse(description string) HouseRequirements {
	r := Defaults()
	desc := strings.ToLower(description)

	if m := sqftRe.FindStringSubmatch(desc); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			r.TotalArea = v
		}
	}

	for _, s := range styleKeywords {
		if strings.Contains(desc, s.keyword) {
			r.Style = s.style
			break
		}
	}

	if m := bedroomRe.FindStringSubmatch(desc); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			r.Bedrooms = v
		}
	}

	if m := bathroomRe.FindStringSubmatch(desc); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			r.Bathrooms = v
		}
	}

	if m := garageRe.FindStringSubmatch(desc); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			r.GarageCars = v
		}
	}

	r.HasAttic = strings.Contains(desc, "attic")
	r.HasBasement = strings.Contains(desc, "basement")

	for _, s := range specialRoomKeywords {
		if strings.Contains(desc, s.keyword) && !containsTag(r.SpecialRooms, s.tag) {
			r.SpecialRooms = append(r.SpecialRooms, s.tag)
		}
	}

	for _, s := range bathroomTypeKeywords {
		if strings.Contains(desc, s.keyword) && !containsTag(r.BathroomTypes, s.tag) {
			r.BathroomTypes = append(r.BathroomTypes, s.tag)
		}
	}

	switch {
	case strings.Contains(desc, "two story"), strings.Contains(desc, "2 story"):
		r.Stories = 2
	case strings.Contains(desc, "three story"), strings.Contains(desc, "3 story"):
		r.Stories = 3
	case strings.Contains(desc, "ranch"), strings.Contains(desc, "single story"):
		r.Stories = 1
	}

	return r
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
