package deck

import "testing"

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "10♥"},
		{NewCard(Diamonds, Two), "2♦"},
		{NewCard(Clubs, Jack), "J♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("expected %s, got %s", tt.expected, got)
		}
	}
}

func TestRankValues(t *testing.T) {
	if NewCard(Spades, Two).Value() != 2 {
		t.Error("Two should have value 2")
	}
	if NewCard(Spades, Ten).Value() != 10 {
		t.Error("Ten should have value 10")
	}
	if NewCard(Spades, Jack).Value() != 11 {
		t.Error("Jack should have value 11")
	}
	if NewCard(Spades, Ace).Value() != 14 {
		t.Error("Ace should have value 14")
	}
}

func TestSuitColours(t *testing.T) {
	if !NewCard(Hearts, Two).IsRed() || !NewCard(Diamonds, Two).IsRed() {
		t.Error("hearts and diamonds should be red")
	}
	if NewCard(Spades, Two).IsRed() || NewCard(Clubs, Two).IsRed() {
		t.Error("spades and clubs should not be red")
	}
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "straight flush",
			input: "AsKsQs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
			},
		},
		{
			name:  "mixed suits with spaces",
			input: "7h 7d 2c",
			expected: []Card{
				{Suit: Hearts, Rank: Seven},
				{Suit: Diamonds, Rank: Seven},
				{Suit: Clubs, Rank: Two},
			},
		},
		{
			name:  "case insensitive",
			input: "tHjDqC",
			expected: []Card{
				{Suit: Hearts, Rank: Ten},
				{Suit: Diamonds, Rank: Jack},
				{Suit: Clubs, Rank: Queen},
			},
		},
		{
			name:    "invalid rank",
			input:   "Xs",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ParseCards(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cards) != len(tt.expected) {
				t.Fatalf("expected %d cards, got %d", len(tt.expected), len(cards))
			}
			for i := range cards {
				if cards[i] != tt.expected[i] {
					t.Errorf("card %d: expected %v, got %v", i, tt.expected[i], cards[i])
				}
			}
		})
	}
}
