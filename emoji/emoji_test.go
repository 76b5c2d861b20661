package emoji

import "testing"

func TestExtendedPictographic(t *testing.T) {
	yes := []rune{'©', '®', 0x203C, 0x2328, 0x2642, 0x26BD, 0x2708,
		0x1F004, 0x1F30E, 0x1F44D, 0x1F600, 0x1F680, 0x1F9DA, 0x1FAE0}
	for _, r := range yes {
		if !IsExtendedPictographic(r) {
			t.Errorf("%#U should be Extended_Pictographic", r)
		}
	}
	no := []rune{'a', '9', ' ', 0x200D, 0x0301, 0x1F1E6, 0x1F3FB, 0xFE0F}
	for _, r := range no {
		if IsExtendedPictographic(r) {
			t.Errorf("%#U should not be Extended_Pictographic", r)
		}
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	SetupEmojiClasses()
	table := Extended_Pictographic
	SetupEmojiClasses()
	if Extended_Pictographic != table {
		t.Errorf("setup must build the class table exactly once")
	}
}
