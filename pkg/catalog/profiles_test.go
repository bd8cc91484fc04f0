package catalog_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-listingwizard/pkg/catalog"
)

func TestDefaultProfiles(t *testing.T) {
	profiles := catalog.DefaultProfiles()

	assert.Equal(t, catalog.AllProfileTypes(), profiles.Types())

	steps, err := profiles.Steps(catalog.ProfileIndividual)
	require.NoError(t, err)
	require.Len(t, steps, 5)
	assert.Equal(t, "property", steps[0].ID)
	assert.Equal(t, []string{"resourceType", "address"}, steps[0].Required)
	assert.Equal(t, "review", steps[len(steps)-1].ID)
	assert.False(t, steps[len(steps)-1].HasRequirements())
}

func TestProfiles_UnknownProfile(t *testing.T) {
	profiles, err := catalog.ParseProfiles([]byte(`
profiles:
  individual:
    title: Only one
    steps:
      - id: a
`))
	require.NoError(t, err)

	_, err = profiles.Steps(catalog.ProfileAgency)
	require.True(t, errors.Is(err, catalog.ErrUnknownProfile))
}

func TestParseProfiles_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty document": `profiles: {}`,
		"unknown type": `
profiles:
  landlord:
    steps: [{id: a}]
`,
		"no steps": `
profiles:
  agency:
    title: Empty
`,
		"duplicate step": `
profiles:
  agency:
    steps: [{id: a}, {id: a}]
`,
		"blank step id": `
profiles:
  agency:
    steps: [{id: " "}]
`,
		"malformed yaml": `profiles: [`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.ParseProfiles([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoadProfiles(t *testing.T) {
	fsys := fstest.MapFS{
		"config/profiles.yaml": &fstest.MapFile{Data: []byte(`
profiles:
  developer:
    title: New development
    steps:
      - id: project
        required: [projectName]
      - id: review
`)},
	}

	profiles, err := catalog.LoadProfiles(fsys, "config/profiles.yaml")
	require.NoError(t, err)

	profile, err := profiles.Profile(catalog.ProfileDeveloper)
	require.NoError(t, err)
	assert.Equal(t, "New development", profile.Title)
	assert.Equal(t, catalog.ProfileDeveloper, profile.Type)
	assert.Len(t, profile.Steps, 2)

	_, err = catalog.LoadProfiles(fsys, "missing.yaml")
	require.Error(t, err)
}

func TestProfile_StepsAreCopied(t *testing.T) {
	profiles := catalog.DefaultProfiles()

	first, err := profiles.Steps(catalog.ProfileAgency)
	require.NoError(t, err)
	first[0].ID = "mutated"

	second, err := profiles.Steps(catalog.ProfileAgency)
	require.NoError(t, err)
	assert.Equal(t, "agency", second[0].ID)
}
