// Public domain.

// Package script classifies observing scripts named in instrument run logs.
//
// A script resolves to a Class, the target, kind and observation type of a
// run.  Most scripts map to a fixed Class.  Others carry target and kind in
// their option string, and take_expo selects a Class with its -e option.
package script

import (
	"fmt"
	"regexp"
	"strings"
)

// Class is the semantic classification of a run.
type Class struct {
	Target string
	Kind   string
	Type   string
}

// Unknown is the Class of a run that cannot be classified more closely.
var Unknown = Class{"unknown", "unknown", "unknown"}

// Tag identifies how a Rule resolves.
type Tag int

const (
	Unrecognized Tag = iota
	Known            // fixed Class
	FromOptions      // target and kind parsed from the option string
	TakeExpo         // Class selected by the -e option
)

var tagNames = [...]string{"Unrecognized", "Known", "FromOptions", "TakeExpo"}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

// Rule is the resolution rule of a single script.
type Rule struct {
	Tag Tag
	// Class is the complete Class of a Known rule.  For FromOptions only
	// Type is set.
	Class    Class
	targetRx *regexp.Regexp
	kindRx   *regexp.Regexp
}

var known = map[string]Class{
	"visual_acq":    {"unknown", "unknown", "ACQUISITION"},
	"visual_setup":  {"unknown", "unknown", "ACQUISITION"},
	"imaging_setup": {"unknown", "unknown", "ACQUISITION"},
	"grabit":        {"", "grabit", "ACQUISITION"},
	"take_guide":    {"", "guide", "GUIDE"},
	"do_dark":       {"no light", "Calib", "DARK"},
	"do_bias":       {"no light ", "Calib", "BIAS"},
	"do_arc":        {"internal light", "Calib", "ARC"},
	"do_focus":      {"internal light", "Calib", "FOCUSSPEC"},
	"ultrafocus":    {"unknown", "Calib", "FOCUSTELE"},
	"do_continuum":  {"internal light", "Calib", "CONTINUUM"},
	"do_dome":       {"external light", "Calib", "DOME"},
	"do_sky":        {"external light", "Calib", "SKYFLAT"},
	"do_skyflat":    {"external light", "Calib", "SKYFLAT"},
	"do_twilight":   {"external light", "Calib", "SKYFLAT"},
	"lamp_respons":  {"internal light", "Calib", "ARC"},
	"do_clean":      {"no light", "SDSU", "CLEAN"},
	"SNIFS_off":     {"no light", "SDSU", "OFF"},
	"SNIFS_kill":    {"no light", "SDSU", "KILL"},
	"SNIFS_on":      {"no light", "SDSU", "ON"},
}

// The object and photo scripts take any option letter after -o as the
// end of the target, and their kind follows -d.  The others stop the
// target at a lower case option and take kind from -k.
var (
	rxTargetAny   = regexp.MustCompile(`-o (.*?)(?: -[a-zA-Z].*)?$`)
	rxTargetLower = regexp.MustCompile(`-o (.*?)(?: -[a-z].*)?$`)
	rxKindD       = regexp.MustCompile(`-d (.*?)(?: -[a-z] .*)?$`)
	rxKindK       = regexp.MustCompile(`-k (.*?)(?: -[a-z] .*)?$`)
	rxExpoType    = regexp.MustCompile(`-e (.*?)(?: -[a-z].*)?$`)
)

var fromOptions = map[string]Rule{
	"do_object":    {FromOptions, Class{Type: "OBJECT"}, rxTargetAny, rxKindD},
	"do_photo":     {FromOptions, Class{Type: "PHOTO"}, rxTargetAny, rxKindD},
	"do_target":    {FromOptions, Class{Type: "OBJECT"}, rxTargetLower, rxKindK},
	"do_screen":    {FromOptions, Class{Type: "SCREEN"}, rxTargetLower, rxKindK},
	"do_fchart":    {FromOptions, Class{Type: "FCHART"}, rxTargetLower, rxKindK},
	"do_acqref":    {FromOptions, Class{Type: "ACQREF"}, rxTargetLower, rxKindK},
	"point_object": {FromOptions, Class{Type: "ACQUISITION"}, rxTargetLower, rxKindK},
}

// take_expo exposure types, keyed by lower case -e value.
var takeExpo = map[string]Class{
	"arc":       {"internal light", "Calib", "ARC"},
	"continuum": {"internal light", "Calib", "CONTINUUM"},
	"flat":      {"internal light", "Calib", "CONTINUUM"},
	"dome":      {"external light", "Calib", "DOME"},
	"sky":       {"external light", "Calib", "SKYFLAT"},
	"object":    {"unknown", "unknown", "unknown"},
	"bias":      {"no light ", "Calib", "BIAS"},
	"dark":      {"no light", "Calib", "DARK"},
}

// Lookup returns the rule for a script name.
func Lookup(script string) Rule {
	if r, ok := fromOptions[script]; ok {
		return r
	}
	if c, ok := known[script]; ok {
		return Rule{Tag: Known, Class: c}
	}
	if script == "take_expo" {
		return Rule{Tag: TakeExpo}
	}
	return Rule{}
}

// Resolve applies the rule to a run's option string.  It returns false only
// for an Unrecognized rule.
//
// Options that lack a flag the rule looks for resolve the missing field to
// "unknown".
func (r Rule) Resolve(option string) (Class, bool) {
	switch r.Tag {
	case Known:
		return r.Class, true
	case FromOptions:
		return Class{
			Target: optionValue(r.targetRx, option),
			Kind:   optionValue(r.kindRx, option),
			Type:   r.Class.Type,
		}, true
	case TakeExpo:
		if c, ok := takeExpo[strings.ToLower(optionValue(rxExpoType, option))]; ok {
			return c, true
		}
		return Unknown, true
	}
	return Unknown, false
}

func optionValue(rx *regexp.Regexp, option string) string {
	m := rx.FindStringSubmatch(option)
	if m == nil {
		return "unknown"
	}
	return strings.TrimSpace(m[1])
}

// Classify resolves a script and its option string.
func Classify(script, option string) (Class, bool) {
	return Lookup(script).Resolve(option)
}
