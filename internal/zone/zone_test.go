package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		state string
		want  Zone
	}{
		{"Delhi", North},
		{"Punjab", North},
		{"Haryana", North},
		{"Uttar Pradesh", North},
		{"Rajasthan", North},
		{"Jammu and Kashmir", North},
		{"Karnataka", South},
		{"Tamil Nadu", South},
		{"Kerala", South},
		{"Telangana", South},
		{"Andhra Pradesh", South},
		{"Andaman and Nicobar Islands", South},
		{"Gujarat", West},
		{"Maharashtra", West},
		{"Goa", West},
		{"West Bengal", East},
		{"Bihar", East},
		{"Jharkhand", East},
		{"Assam", East},
		{"Meghalaya", East},
		{"Madhya Pradesh", Central},
		{"Chhattisgarh", Central},
		{"Odisha", Central},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.state), "state %q", tt.state)
	}
}

func TestClassify_CaseAndWhitespace(t *testing.T) {
	assert.Equal(t, South, Classify("KaRnAtAkA"))
	assert.Equal(t, West, Classify("mAhArAsHtRa"))
	assert.Equal(t, North, Classify("DELHI"))
	assert.Equal(t, South, Classify("  Karnataka  "))
	assert.Equal(t, North, Classify("   Delhi"))
}

func TestClassify_Total(t *testing.T) {
	assert.Equal(t, Misc, Classify("Unknown State"))
	assert.Equal(t, Misc, Classify(""))
	assert.Equal(t, Misc, Classify("123"))
}
