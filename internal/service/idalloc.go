package service

import (
	"context"
	"fmt"

	"github.com/shenikar/rtcc_dashboard/internal/models"
)

type sequenceSource interface {
	MaxSequence(ctx context.Context, prefix string) (int, error)
}

// idAllocator выдает следующий идентификатор по схеме "прочитать максимум, прибавить единицу".
// Сам по себе он не защищен от гонок: вызывающий обязан держать блокировку класса
// сущностей на время allocate + insert.
type idAllocator struct {
	source sequenceSource
}

func (a *idAllocator) Allocate(ctx context.Context, prefix string) (string, error) {
	last, err := a.source.MaxSequence(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("could not read last %s sequence: %w", prefix, err)
	}
	return models.FormatSequentialID(prefix, last+1), nil
}
