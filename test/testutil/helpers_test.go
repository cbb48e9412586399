package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "valid date",
			dateStr:   "2025-12-15",
			wantYear:  2025,
			wantMonth: time.December,
			wantDay:   15,
		},
		{
			name:      "leap year date",
			dateStr:   "2024-02-29",
			wantYear:  2024,
			wantMonth: time.February,
			wantDay:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestPtr(t *testing.T) {
	t.Run("int value", func(t *testing.T) {
		intVal := Ptr(42)
		assert.NotNil(t, intVal)
		assert.Equal(t, 42, *intVal)
	})

	t.Run("string value", func(t *testing.T) {
		strVal := Ptr("TPE")
		assert.NotNil(t, strVal)
		assert.Equal(t, "TPE", *strVal)
	})
}

func TestIntPtr(t *testing.T) {
	p := IntPtr(500)
	assert.NotNil(t, p)
	assert.Equal(t, 500, *p)
}

func TestBoolPtr(t *testing.T) {
	p := BoolPtr(false)
	assert.NotNil(t, p)
	assert.False(t, *p)
}

func TestStringSlice(t *testing.T) {
	s := StringSlice("BR", "CI")
	assert.Equal(t, []string{"BR", "CI"}, s)
}
