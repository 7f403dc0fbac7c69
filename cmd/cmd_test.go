package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenhope/everrich/internal/config"
	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/quiz"
)

func newSession(t *testing.T) *quiz.Session {
	t.Helper()
	s, err := quiz.NewSession(content.Questions(), quiz.DefaultTable())
	require.NoError(t, err)
	return s
}

func TestDiagnose_ReadsAnswers(t *testing.T) {
	var out bytes.Buffer
	result, err := diagnose(strings.NewReader("1\n2\n2\n"), &out, newSession(t))
	require.NoError(t, err)

	assert.Equal(t, 7, result.Total)
	assert.Equal(t, quiz.Balanced, result.Category)
	assert.Contains(t, out.String(), "[3/3]")
	assert.Contains(t, out.String(), "C3 稳健型")
}

func TestDiagnose_RepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	result, err := diagnose(strings.NewReader("x\n9\n3\n3\n3\n"), &out, newSession(t))
	require.NoError(t, err)

	assert.Equal(t, 15, result.Total)
	assert.Equal(t, 2, strings.Count(out.String(), "请输入 1-3"))
}

func TestDiagnose_InputClosed(t *testing.T) {
	var out bytes.Buffer
	_, err := diagnose(strings.NewReader("1\n"), &out, newSession(t))
	assert.ErrorIs(t, err, errInputClosed)
}

func TestDiagnosisFromScores(t *testing.T) {
	d, err := diagnosisFromScores("5, 5, 5")
	require.NoError(t, err)
	assert.True(t, d.HasResult)
	assert.Equal(t, quiz.Speculative, d.Result.Category)

	d, err = diagnosisFromScores("")
	require.NoError(t, err)
	assert.False(t, d.HasResult)
	assert.True(t, d.Allocation.Valid())

	_, err = diagnosisFromScores("1,3")
	assert.Error(t, err)

	_, err = diagnosisFromScores("1,x,3")
	assert.Error(t, err)
}

func TestDiagnosisFromScores_RejectsScoresNoOptionCarries(t *testing.T) {
	for _, scores := range []string{"100,0,-7", "1,2,3", "5,5,6"} {
		t.Run(scores, func(t *testing.T) {
			_, err := diagnosisFromScores(scores)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "is not one of 1/3/5")
		})
	}
}

func TestAllocationFromValues(t *testing.T) {
	tests := []struct {
		name    string
		values  [4]int
		wantErr string
	}{
		{"default", [4]int{10, 20, 30, 40}, ""},
		{"all cash", [4]int{100, 0, 0, 0}, ""},
		{"out of range sums to 100", [4]int{250, -50, -40, -60}, "--cash must be 0-100"},
		{"negative leverage", [4]int{50, -10, 30, 30}, "--leverage must be 0-100"},
		{"over 100", [4]int{15, 20, 30, 40}, "must sum to 100, got 105"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := allocationFromValues(tt.values)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, a.Valid())
			assert.Equal(t, tt.values[0], a.Cash)
			assert.Equal(t, tt.values[3], a.Preservation)
		})
	}
}

func TestOpenLogger_WritesToConfiguredFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogPath = filepath.Join(t.TempDir(), "logs", "greenhope.log")

	logger, closer, err := openLogger(cfg)
	require.NoError(t, err)
	logger.Info("mail draft opened", "reference", "ABCD1234")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ABCD1234")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "greenhope")
}
