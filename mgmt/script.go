package mgmt

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/ndnfwd/ribd/rib"
)

// ScriptEntry is one line of a YAML update script: a REGISTER, UNREGISTER,
// or REMOVE_FACE, expressed in the same shape as the management-command
// surface (spec §6), but with string fields so it can be hand-written.
type ScriptEntry struct {
	Action             string   `yaml:"action"`
	Name               string   `yaml:"name,omitempty"`
	FaceID             uint64   `yaml:"faceId"`
	Origin             string   `yaml:"origin,omitempty"`
	Cost               uint64   `yaml:"cost,omitempty"`
	Flags              []string `yaml:"flags,omitempty"`
	ExpirationPeriodMs *uint64  `yaml:"expirationPeriodMs,omitempty"`
}

// ParseScript decodes a YAML list of ScriptEntry values.
func ParseScript(data []byte) ([]ScriptEntry, error) {
	var entries []ScriptEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseOrigin(s string) (rib.Origin, error) {
	switch s {
	case "", "app":
		return rib.OriginApp, nil
	case "static":
		return rib.OriginStatic, nil
	case "client":
		return rib.OriginClient, nil
	case "nlsr":
		return rib.OriginNLSR, nil
	default:
		return 0, fmt.Errorf("unknown origin %q", s)
	}
}

func parseFlags(names []string) (rib.Flags, error) {
	var f rib.Flags
	for _, n := range names {
		switch n {
		case "child-inherit", "CHILD_INHERIT":
			f |= rib.ChildInherit
		case "capture", "CAPTURE":
			f |= rib.Capture
		default:
			return 0, fmt.Errorf("unknown flag %q", n)
		}
	}
	return f, nil
}

// Apply runs every entry in script against r in order, through the given
// onResult callback, blocking between entries until each one's FibUpdater
// round trip completes (so r must already have a synchronous FibUpdater
// installed, e.g. fib.Func with Dispatcher nil).
func Apply(r *rib.Rib, script []ScriptEntry, onResult func(ScriptEntry, ControlResponse)) error {
	for _, entry := range script {
		origin, err := parseOrigin(entry.Origin)
		if err != nil {
			return err
		}
		switch entry.Action {
		case "register", "REGISTER":
			flags, err := parseFlags(entry.Flags)
			if err != nil {
				return err
			}
			params := ControlParameters{
				Name:               rib.ParseName(entry.Name),
				FaceID:             rib.FaceID(entry.FaceID),
				Origin:             origin,
				Cost:               entry.Cost,
				Flags:              flags,
				ExpirationPeriodMs: entry.ExpirationPeriodMs,
			}
			if err := Register(r, params, func(resp ControlResponse) { onResult(entry, resp) }); err != nil {
				return err
			}
		case "unregister", "UNREGISTER":
			if err := Unregister(r, rib.ParseName(entry.Name), rib.FaceID(entry.FaceID), origin, func(resp ControlResponse) { onResult(entry, resp) }); err != nil {
				return err
			}
		case "remove_face", "REMOVE_FACE":
			if err := RemoveFace(r, rib.FaceID(entry.FaceID)); err != nil {
				return err
			}
			onResult(entry, ControlResponse{Code: 200, Text: "OK"})
		default:
			return fmt.Errorf("unknown action %q", entry.Action)
		}
	}
	return nil
}
