package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

//go:embed profiles.yaml
var defaultProfilesYAML []byte

// ErrUnknownProfile is returned when a profile type has no catalog entry.
var ErrUnknownProfile = errors.New("catalog: unknown profile")

// Profile is the wizard definition for one profile type.
type Profile struct {
	Type     ProfileType   `yaml:"-" json:"type"`
	Title    string        `yaml:"title" json:"title"`
	TitleKey string        `yaml:"titleKey,omitempty" json:"titleKey,omitempty"`
	Steps    []wizard.Step `yaml:"steps" json:"steps"`
}

// Profiles maps profile types to their wizard definitions.
type Profiles struct {
	entries map[ProfileType]Profile
}

type profilesDocument struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// DefaultProfiles returns the embedded profile catalog.
func DefaultProfiles() *Profiles {
	profiles, err := ParseProfiles(defaultProfilesYAML)
	if err != nil {
		// The embedded document is validated by tests.
		panic(err)
	}
	return profiles
}

// LoadProfiles reads a profile catalog document from fsys.
func LoadProfiles(fsys fs.FS, path string) (*Profiles, error) {
	if fsys == nil {
		return nil, errors.New("catalog: profiles fs is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read profiles %q: %w", path, err)
	}
	profiles, err := ParseProfiles(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse profiles %q: %w", path, err)
	}
	return profiles, nil
}

// ParseProfiles decodes a YAML profile catalog. Profile keys must be known
// profile types and step IDs must be unique and non-empty within a profile.
func ParseProfiles(data []byte) (*Profiles, error) {
	var doc profilesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode profiles: %w", err)
	}
	if len(doc.Profiles) == 0 {
		return nil, errors.New("catalog: profiles document is empty")
	}

	out := &Profiles{entries: make(map[ProfileType]Profile, len(doc.Profiles))}
	for key, profile := range doc.Profiles {
		profileType, err := ParseProfileType(key)
		if err != nil {
			return nil, err
		}
		if err := validateSteps(profileType, profile.Steps); err != nil {
			return nil, err
		}
		profile.Type = profileType
		out.entries[profileType] = profile
	}
	return out, nil
}

func validateSteps(profile ProfileType, steps []wizard.Step) error {
	if len(steps) == 0 {
		return fmt.Errorf("catalog: profile %q declares no steps", profile)
	}
	seen := make(map[string]struct{}, len(steps))
	for i, step := range steps {
		id := strings.TrimSpace(step.ID)
		if id == "" {
			return fmt.Errorf("catalog: profile %q step %d has no id", profile, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("catalog: profile %q declares step %q twice", profile, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Profile returns the definition for profileType.
func (p *Profiles) Profile(profileType ProfileType) (Profile, error) {
	if p == nil {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, profileType)
	}
	profile, ok := p.entries[profileType]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, profileType)
	}
	profile.Steps = append([]wizard.Step(nil), profile.Steps...)
	return profile, nil
}

// Steps returns the ordered step list for profileType.
func (p *Profiles) Steps(profileType ProfileType) ([]wizard.Step, error) {
	profile, err := p.Profile(profileType)
	if err != nil {
		return nil, err
	}
	return profile.Steps, nil
}

// Types lists the profile types present in the catalog, in enumeration order.
func (p *Profiles) Types() []ProfileType {
	if p == nil {
		return nil
	}
	out := make([]ProfileType, 0, len(p.entries))
	for profileType := range p.entries {
		out = append(out, profileType)
	}
	order := make(map[ProfileType]int, len(profileTypes))
	for i, profileType := range profileTypes {
		order[profileType] = i
	}
	sort.Slice(out, func(i, j int) bool {
		return order[out[i]] < order[out[j]]
	})
	return out
}
