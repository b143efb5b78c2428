package commands_test

import (
	"testing"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func testPart(t *testing.T, stock int) *part.Part {
	t.Helper()
	p, err := part.NewPart(part.Details{Name: "Brake disc", Category: "Brakes"}, money(t, "55"), stock)
	require.NoError(t, err)
	return p
}

func testOrder(t *testing.T) *order.ServiceOrder {
	t.Helper()
	o, err := order.NewServiceOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, "")
	require.NoError(t, err)
	return o
}
