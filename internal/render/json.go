package render

import (
	"encoding/json"
	"fmt"

	"github.com/okian/blade/internal/domain/model"
	"github.com/okian/blade/internal/domain/types"
)

// JSON renders the ranking as indented JSON.
func JSON(standings []model.Standing, champion model.Standing, total int) (string, error) {
	b, err := json.MarshalIndent(types.RankingFrom(standings, champion, total), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode ranking: %w", err)
	}
	return string(b) + "\n", nil
}
