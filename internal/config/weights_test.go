package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kenkin2/kin2-web-sub004/internal/config"
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
)

func TestDefaultWeights_Valid(t *testing.T) {
	t.Parallel()
	w := config.DefaultWeights()
	require.NoError(t, w.Validate())
}

func TestDefaultWeights_CapsSumTo100(t *testing.T) {
	t.Parallel()
	w := config.DefaultWeights()
	sum := w.SkillsMax + w.ExperienceMax + w.LocationMax + w.AvailabilityMax + w.EducationMax + w.CulturalMax
	assert.InDelta(t, 100.0, sum, 1e-9)
	assert.Equal(t, 30.0, w.SkillsMax)
	assert.Equal(t, 25.0, w.ExperienceMax)
	assert.Equal(t, 15.0, w.LocationMax)
	assert.Equal(t, 15.0, w.AvailabilityMax)
	assert.Equal(t, 10.0, w.EducationMax)
	assert.Equal(t, 5.0, w.CulturalMax)
}

func TestDefaultWeights_Tables(t *testing.T) {
	t.Parallel()
	w := config.DefaultWeights()
	assert.Equal(t, 1.2, w.ProficiencyMultipliers[domain.ProficiencyExpert])
	assert.Equal(t, 0.6, w.ProficiencyMultipliers[domain.ProficiencyBeginner])
	assert.Equal(t, 1.0, w.RemoteCompatibility[domain.RemoteFull][domain.RemoteFull])
	assert.Equal(t, 0.0, w.RemoteCompatibility[domain.RemoteFull][domain.RemoteOnsite])
	assert.Equal(t, 5.0, w.RequiredYearsByLevel[domain.LevelSenior])
	assert.Len(t, w.ValuesVocabulary, 16)
}

func TestLoadWeights_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()
	w, err := config.LoadWeights("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultWeights(), w)
}

func TestLoadWeights_YAMLOverlay(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "weights.yaml")
	overlay := "skill_match_threshold: 0.8\nconsider_threshold: 55\n"
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o600))

	w, err := config.LoadWeights(path)
	require.NoError(t, err)
	assert.Equal(t, 0.8, w.SkillMatchThreshold)
	assert.Equal(t, 55.0, w.ConsiderThreshold)
	// Untouched tables keep their defaults.
	assert.Equal(t, 30.0, w.SkillsMax)
	assert.Equal(t, config.DefaultWeights().ProficiencyMultipliers, w.ProficiencyMultipliers)
}

func TestLoadWeights_RejectsBrokenCaps(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "weights.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skills_max: 50\n"), 0o600))

	_, err := config.LoadWeights(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLoadWeights_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := config.LoadWeights(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate_ThresholdOrder(t *testing.T) {
	t.Parallel()
	w := config.DefaultWeights()
	w.RecommendThreshold = 95 // above the strong threshold
	require.Error(t, w.Validate())
}
