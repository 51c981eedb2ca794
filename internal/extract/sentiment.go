package extract

import (
	"strings"

	"github.com/ssarda/nsescan/models"
)

// Negative terms are checked before positive ones so that negative always
// wins ties ("bagged order" + "penalty" in the same filing reads Negative).
var negativeTerms = []string{
	"penalty", "fraud", "default", "resignation", "litigation",
	"downgrade", "reject", "loss", "show-cause", "show cause",
}

var positiveTerms = []string{
	"order", "contract", "awarded", "bagged", "acquisition", "bonus",
	"dividend", "buyback", "letter of acceptance", "partnership", "win",
}

// Sentiment classifies free text into Positive, Negative or Neutral using
// fixed keyword lexicons.
func Sentiment(text string) models.Sentiment {
	t := strings.ToLower(text)

	for _, term := range negativeTerms {
		if strings.Contains(t, term) {
			return models.SentimentNegative
		}
	}
	for _, term := range positiveTerms {
		if strings.Contains(t, term) {
			return models.SentimentPositive
		}
	}
	return models.SentimentNeutral
}
