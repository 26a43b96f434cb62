package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCafeteriaTables(t *testing.T) {
	require.NoError(t, VerifyCafeteriaTables())
}

func TestParseCafeteria(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Cafeteria
		ok       bool
	}{
		{"faculty intent", "faculty-cafeteria", CafeteriaFaculty, true},
		{"student intent", "student-cafeteria", CafeteriaStudent, true},
		{"dormitory intent", "dormitory-cafeteria", CafeteriaDormitory, true},
		{"faculty display", "교직원 식당", CafeteriaFaculty, true},
		{"student display", "학생 식당", CafeteriaStudent, true},
		{"dormitory display", "기숙사 식당", CafeteriaDormitory, true},
		{"unknown", "library-hours", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseCafeteria(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, c)
			}
		})
	}
}

func TestCafeteria_PathSegment(t *testing.T) {
	assert.Equal(t, "0", CafeteriaFaculty.PathSegment())
	assert.Equal(t, "1", CafeteriaStudent.PathSegment())
	assert.Equal(t, "2", CafeteriaDormitory.PathSegment())
}

func TestLanguageCode_IsValid(t *testing.T) {
	assert.True(t, LanguageKorean.IsValid())
	assert.True(t, LanguageEnglish.IsValid())
	assert.False(t, LanguageCode("ja-JP").IsValid())
	assert.True(t, LanguageEnglish.IsEnglish())
	assert.False(t, LanguageKorean.IsEnglish())
}
