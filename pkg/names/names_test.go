package names_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutthirak/rollcall/pkg/names"
)

func TestParseFullCell(t *testing.T) {
	parsed, ok := names.Parse("นาง CHHUN ORNG LY (รี)/ลาออก 27/03")
	require.True(t, ok)

	assert.Equal(t, "นาง|CHHUN|ORNG", parsed.Key.String())
	assert.Equal(t, "นาง CHHUN ORNG (รี)", parsed.Display)
	assert.Equal(t, "รี", parsed.Nickname)
	assert.Equal(t, "ลาออก 27/03", parsed.Note)
}

func TestParseNoteDetection(t *testing.T) {
	// A slash starts a note only when a letter follows; date separators
	// inside the note must not split it further.
	parsed, ok := names.Parse("นาย SOMCHAI DEE/เริ่มใหม่ 01/08")
	require.True(t, ok)
	assert.Equal(t, "เริ่มใหม่ 01/08", parsed.Note)

	parsed, ok = names.Parse("นาย SOMCHAI DEE")
	require.True(t, ok)
	assert.Empty(t, parsed.Note)
}

func TestParsePrefixNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		key  string
		name string
	}{
		{"นาย SOMCHAI JAIDEE", "นาย|SOMCHAI|JAIDEE", "canonical prefix"},
		{"นาง MALEE SUK", "นาง|MALEE|SUK", "canonical prefix"},
		{"นางสาว PREEYA WONG", "นางสาว|PREEYA|WONG", "canonical prefix"},
		{"น.ส. PREEYA WONG", "นางสาว|PREEYA|WONG", "abbreviated"},
		{"นส. PREEYA WONG", "นางสาว|PREEYA|WONG", "abbreviated no dots"},
		{"น.ส PREEYA WONG", "นางสาว|PREEYA|WONG", "abbreviated half dots"},
		{"นส PREEYA WONG", "นางสาว|PREEYA|WONG", "abbreviated bare"},
		{"น. SOMCHAI JAIDEE", "นาย|SOMCHAI|JAIDEE", "abbreviated mr"},
		{"นายสมชาย ใจดี", "นาย|สมชาย|ใจดี", "fused prefix"},
		{"นางสาวปรียา วงศ์", "นางสาว|ปรียา|วงศ์", "fused long prefix wins"},
		{"SOMCHAI JAIDEE", "|SOMCHAI|JAIDEE", "no prefix"},
	}
	for _, tt := range tests {
		parsed, ok := names.Parse(tt.raw)
		require.True(t, ok, tt.raw)
		assert.Equal(t, tt.key, parsed.Key.String(), "%s: %s", tt.name, tt.raw)
	}
}

func TestParseNicknameSpanDeleted(t *testing.T) {
	// An interior nickname is cut out together with its surrounding
	// whitespace, fusing its neighbors into one token.
	parsed, ok := names.Parse("นาย SOMCHAI (ชัย) JAIDEE")
	require.True(t, ok)
	assert.Equal(t, "นาย|SOMCHAIJAIDEE|", parsed.Key.String())
	assert.Equal(t, "ชัย", parsed.Nickname)

	parsed, ok = names.Parse("นาย SOM(ชัย)CHAI DEE")
	require.True(t, ok)
	assert.Equal(t, "นาย|SOMCHAI|DEE", parsed.Key.String())
}

func TestParseRejectsEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t"} {
		_, ok := names.Parse(raw)
		assert.False(t, ok, "%q", raw)
	}
}

func TestParseSingleToken(t *testing.T) {
	parsed, ok := names.Parse("นาย เสร็จ")
	require.True(t, ok)
	assert.Equal(t, "นาย|เสร็จ|", parsed.Key.String())
}

func TestNicknamesMatch(t *testing.T) {
	// The month where only the nickname was recorded as the whole name.
	assert.True(t, names.NicknamesMatch("นาย PISET SAY (เสร็จ)", "นาย เสร็จ"))
	assert.True(t, names.NicknamesMatch("นาย เสร็จ", "นาย PISET SAY (เสร็จ)"))
	assert.True(t, names.NicknamesMatch("นาย A B (รี)", "นาง C D (รี)"))
	assert.False(t, names.NicknamesMatch("นาย PISET SAY (เสร็จ)", "นาย SOMCHAI DEE (ชัย)"))
	assert.False(t, names.NicknamesMatch("นาย PISET SAY", "นาย SOMCHAI DEE"))
}

func TestKeyIsZero(t *testing.T) {
	assert.True(t, names.NameKey{}.IsZero())
	assert.False(t, names.NameKey{First: "A"}.IsZero())
}
