package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestPickString(t *testing.T) {
	assert.Equal(t, "translated", PickString("translated", "base"))
	assert.Equal(t, "base", PickString("", "base"))
	assert.Equal(t, "", PickString("", ""))
}

func TestPickJSONAtomic(t *testing.T) {
	base := datatypes.JSON(`{"phone":"+995 32 123","email":"info@firm.ge"}`)
	translated := datatypes.JSON(`{"phone":"+995 32 999"}`)

	// The translated document replaces the base wholesale. Keys present only
	// in the base must NOT leak through.
	got := PickJSON(translated, base)
	assert.JSONEq(t, `{"phone":"+995 32 999"}`, string(got))
}

func TestPickJSONFallsBack(t *testing.T) {
	base := datatypes.JSON(`["tax","corporate"]`)

	assert.Equal(t, base, PickJSON(nil, base))
	assert.Equal(t, base, PickJSON(datatypes.JSON(``), base))
	assert.Equal(t, base, PickJSON(datatypes.JSON(`null`), base))
}

func TestPickJSONBothEmpty(t *testing.T) {
	got := PickJSON(nil, nil)
	assert.True(t, len(got) == 0 || string(got) == "null")
}
