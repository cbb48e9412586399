package tool

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/shkao/mcp-hub/internal/domain"
)

// DiceRollName is the canonical name of the dice roll tool.
const DiceRollName = "roll_dice"

// diceSides is the number of faces per die.
const diceSides = 6

// maxDice bounds a single roll to keep responses reasonable.
const maxDice = 1000

// DiceRollTool rolls six-sided dice locally; it is the one tool with no
// upstream API behind it.
type DiceRollTool struct {
	roll func(sides int) int
}

// NewDiceRollTool creates a dice roll tool backed by the default random source.
func NewDiceRollTool() *DiceRollTool {
	return &DiceRollTool{
		roll: func(sides int) int { return rand.IntN(sides) + 1 },
	}
}

// NewDiceRollToolWithRoller creates a dice roll tool with a custom roll
// function. Used by tests for deterministic results.
func NewDiceRollToolWithRoller(roll func(sides int) int) *DiceRollTool {
	return &DiceRollTool{roll: roll}
}

// Name returns the tool identifier.
func (t *DiceRollTool) Name() string {
	return DiceRollName
}

// Definition describes the dice tool and its argument schema.
func (t *DiceRollTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        DiceRollName,
		Description: "Roll a number of six-sided dice and return each die's result.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"n_dice": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     maxDice,
					"description": "The number of dice to roll",
				},
			},
			"required":             []string{"n_dice"},
			"additionalProperties": false,
		},
	}
}

// Invoke rolls the requested number of dice.
func (t *DiceRollTool) Invoke(ctx context.Context, args map[string]any) (any, error) {
	n, err := intArg(args, "n_dice", 0)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n_dice must be at least 1", domain.ErrInvalidRequest)
	}
	if n > maxDice {
		return nil, fmt.Errorf("%w: n_dice cannot exceed %d", domain.ErrInvalidRequest, maxDice)
	}

	results := make([]int, n)
	for i := range results {
		results[i] = t.roll(diceSides)
	}
	return results, nil
}
