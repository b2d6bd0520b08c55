// ABOUTME: Read-only question catalog consulted by the inference engine
// ABOUTME: Safe to share across sessions; lookups never mutate state
package catalog

import (
	"fmt"

	"github.com/omarZACK/Dermazeen/internal/models"
)

// Catalog resolves question ids to their definitions.
type Catalog interface {
	// Get returns the question with the given id, or
	// models.ErrQuestionNotFound.
	Get(id string) (models.Question, error)
	// All returns every question in declaration order.
	All() []models.Question
}

type static struct {
	byID  map[string]models.Question
	order []models.Question
}

// New builds a catalog from the given questions.
func New(questions []models.Question) Catalog {
	c := &static{byID: make(map[string]models.Question, len(questions))}
	for _, q := range questions {
		if _, dup := c.byID[q.ID]; dup {
			continue
		}
		c.byID[q.ID] = q
		c.order = append(c.order, q)
	}
	return c
}

func (c *static) Get(id string) (models.Question, error) {
	q, ok := c.byID[id]
	if !ok {
		return models.Question{}, fmt.Errorf("%w: %s", models.ErrQuestionNotFound, id)
	}
	return q, nil
}

func (c *static) All() []models.Question {
	out := make([]models.Question, len(c.order))
	copy(out, c.order)
	return out
}
