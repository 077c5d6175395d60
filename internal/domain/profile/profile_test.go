package profile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProfile_RemoveExperience_UnknownIDIsNoop(t *testing.T) {
	kept := Experience{ID: uuid.New(), Title: "Engineer"}
	p := &Profile{Experience: []Experience{kept}}

	p.RemoveExperience(uuid.New())
	assert.Len(t, p.Experience, 1)

	p.RemoveExperience(kept.ID)
	assert.Empty(t, p.Experience)
}

func TestProfile_RemoveEducation(t *testing.T) {
	first := Education{ID: uuid.New(), School: "MIT"}
	second := Education{ID: uuid.New(), School: "Stanford"}
	p := &Profile{Education: []Education{first, second}}

	p.RemoveEducation(first.ID)
	assert.Len(t, p.Education, 1)
	assert.Equal(t, "Stanford", p.Education[0].School)
}
