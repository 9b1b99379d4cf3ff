package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	cases := []struct {
		name       string
		in         dto.PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"vacío usa defaults", dto.PageRequest{}, 20, 0},
		{"limit negativo usa default", dto.PageRequest{Limit: -5, Offset: 3}, 20, 3},
		{"limit sobre el tope se recorta", dto.PageRequest{Limit: 9999}, 100, 0},
		{"offset negativo se recorta a cero", dto.PageRequest{Limit: 10, Offset: -1}, 10, 0},
		{"valores válidos pasan tal cual", dto.PageRequest{Limit: 50, Offset: 40}, 50, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.DefaultPage()
			assert.Equal(t, tc.wantLimit, tc.in.Limit)
			assert.Equal(t, tc.wantOffset, tc.in.Offset)
		})
	}
}
