package nfsengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidateRejectsNegativeTimeout(t *testing.T) {
	err := Config{RequestTimeoutMillis: -1}.Validate()
	assert.Error(t, err)
}

func TestConfigValidateAcceptsZeroTimeout(t *testing.T) {
	assert.NoError(t, Config{RequestTimeoutMillis: 0}.Validate())
}
