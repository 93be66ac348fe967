package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	original := logrus.StandardLogger().Out
	SetupTestLogger()
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(original) })
	return &buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestDevelopmentTrimsNoisyFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"path":       "/api/brands",
		"user_agent": "curl",
		"user_id":    7,
		"user_role":  "admin",
		"username":   "admin",
	}).Info("ok")

	assert.Contains(t, buf.String(), "path=/api/brands")
	assert.Contains(t, buf.String(), "user_id=7")
	assert.Contains(t, buf.String(), "user_role=admin")
	assert.NotContains(t, buf.String(), "user_agent")
	assert.NotContains(t, buf.String(), "username")
}

func TestProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithField("user_agent", "curl").Info("ok")

	assert.Contains(t, buf.String(), "user_agent=curl")
	assert.Contains(t, buf.String(), id)
}

func TestConfigureFallsBackToInfo(t *testing.T) {
	captureOutput(t)

	assert.Equal(t, logrus.InfoLevel, Configure("barulhento"))
	assert.Equal(t, logrus.WarnLevel, Configure("warn"))

	SetupTestLogger()
}
