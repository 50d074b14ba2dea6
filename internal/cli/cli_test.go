package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcarbon/internal/cli"
	"smartcarbon/internal/domain"
)

func execute(t *testing.T, ctx context.Context, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

type extractResult struct {
	Category string                 `json:"category"`
	Unit     string                 `json:"unit"`
	RawText  string                 `json:"raw_text"`
	Fields   domain.ExtractedFields `json:"fields"`
}

func TestFactorsCmd(t *testing.T) {
	out, err := execute(t, context.Background(), "", "factors")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "CATEGORY")
	assert.Contains(t, lines[1], "electricity")
	assert.Contains(t, lines[1], "0.444")
}

func TestFactorsCmd_JSON(t *testing.T) {
	out, err := execute(t, context.Background(), "", "factors", "--json")

	require.NoError(t, err)
	var factors []domain.EmissionFactor
	require.NoError(t, json.Unmarshal([]byte(out), &factors))
	assert.Len(t, factors, 8)
}

func TestCalcCmd(t *testing.T) {
	out, err := execute(t, context.Background(), "", "calc", "50", "fuel")

	require.NoError(t, err)
	assert.Contains(t, out, "50 liter of fuel = 115.50 kg CO2e")
	assert.Contains(t, out, "Equivalent to driving ~602 miles")
}

func TestCalcCmd_UnknownCategory(t *testing.T) {
	_, err := execute(t, context.Background(), "", "calc", "10", "steel")

	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestCalcCmd_InvalidAmount(t *testing.T) {
	_, err := execute(t, context.Background(), "", "calc", "ten", "fuel")

	assert.Error(t, err)
}

func TestExtractCmd_Stdin(t *testing.T) {
	out, err := execute(t, context.Background(),
		"Invoice date 03/14/2024 Amount: 120.5 kWh Total: $45.00",
		"extract", "--category", "electricity")

	require.NoError(t, err)
	var res extractResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "kWh", res.Unit)
	require.NotNil(t, res.Fields.Amount)
	assert.Equal(t, 120.5, *res.Fields.Amount)
	require.NotNil(t, res.Fields.Cost)
	assert.Equal(t, 45.0, *res.Fields.Cost)
	assert.Equal(t, "03/14/2024", res.Fields.Date)
}

func TestExtractCmd_FileWithToday(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt.txt")
	require.NoError(t, os.WriteFile(path, []byte("Pump 3 dispensed 50 liters"), 0o600))

	out, err := execute(t, context.Background(), "", "extract", "-c", "fuel", "-f", path, "--today", "2024-06-01")

	require.NoError(t, err)
	var res extractResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotNil(t, res.Fields.Amount)
	assert.Equal(t, 50.0, *res.Fields.Amount)
	assert.Nil(t, res.Fields.Cost)
	assert.Equal(t, "06/01/2024", res.Fields.Date)
}

func TestExtractCmd_RequiresCategory(t *testing.T) {
	_, err := execute(t, context.Background(), "text", "extract")

	assert.Error(t, err)
}

func TestExtractCmd_UnknownCategory(t *testing.T) {
	_, err := execute(t, context.Background(), "text", "extract", "--category", "steel")

	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

type stubRunner struct {
	name   string
	stdout string
}

func (s *stubRunner) Run(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
	s.name = name
	return []byte(s.stdout), nil, nil
}

func TestExtractCmd_Image(t *testing.T) {
	runner := &stubRunner{stdout: "Meter read: 30 m³\nTotal $12.40\n"}
	ctx := cli.WithRunner(context.Background(), runner)

	out, err := execute(t, ctx, "\x89PNG fake", "extract", "--category", "water", "--image", "--today", "2024-06-01")

	require.NoError(t, err)
	assert.Equal(t, "tesseract", runner.name)
	var res extractResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Meter read: 30 m³\nTotal $12.40", res.RawText)
	require.NotNil(t, res.Fields.Amount)
	assert.Equal(t, 30.0, *res.Fields.Amount)
	require.NotNil(t, res.Fields.Cost)
	assert.Equal(t, 12.4, *res.Fields.Cost)
}
