package evaluator

import "testing"

func TestQualifies(t *testing.T) {
	tests := []struct {
		name      string
		cards     string
		qualifies bool
	}{
		{"king high qualifies", "Kh7d2c", true},
		{"jack high qualifies", "Js4d2c", true},
		{"queen high qualifies", "Qc8h3d", true},
		{"ten high does not qualify", "Ts9h2d", false},
		{"nine high does not qualify", "9c7d2h", false},
		{"any pair qualifies", "2s2d3c", true},
		{"flush qualifies", "9h5h2h", true},
		{"straight qualifies", "2c3d4h", true},
		{"ace low straight qualifies", "As2d3c", true},
		{"trips qualify", "4h4d4c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Qualifies(hand(tt.cards)); got != tt.qualifies {
				t.Errorf("Qualifies(%s) = %v, want %v", tt.cards, got, tt.qualifies)
			}
		})
	}
}
