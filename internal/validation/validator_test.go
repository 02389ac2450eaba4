package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type monthField struct {
	Month string `validate:"month_key"`
}

type colorField struct {
	Color string `validate:"color_token"`
}

type amountField struct {
	Amount string `validate:"positive_amount"`
}

func TestMonthKeyRule(t *testing.T) {
	v := GetValidator().GetValidate()

	assert.NoError(t, v.Struct(monthField{Month: "2024-07"}))
	assert.NoError(t, v.Struct(monthField{Month: "1999-12"}))
	assert.Error(t, v.Struct(monthField{Month: "2024-13"}))
	assert.Error(t, v.Struct(monthField{Month: "2024-00"}))
	assert.Error(t, v.Struct(monthField{Month: "2024-7"}))
	assert.Error(t, v.Struct(monthField{Month: "July 2024"}))
}

func TestColorTokenRule(t *testing.T) {
	v := GetValidator().GetValidate()

	assert.NoError(t, v.Struct(colorField{Color: "#22c55e"}))
	assert.NoError(t, v.Struct(colorField{Color: "hsl(var(--chart-1))"}))
	assert.Error(t, v.Struct(colorField{Color: "green"}))
	assert.Error(t, v.Struct(colorField{Color: ""}))
}

func TestPositiveAmountRule(t *testing.T) {
	v := GetValidator().GetValidate()

	assert.NoError(t, v.Struct(amountField{Amount: "100.50"}))
	assert.NoError(t, v.Struct(amountField{Amount: "0.01"}))
	assert.Error(t, v.Struct(amountField{Amount: "0"}))
	assert.Error(t, v.Struct(amountField{Amount: "-5"}))
	assert.Error(t, v.Struct(amountField{Amount: "abc"}))
	assert.Error(t, v.Struct(amountField{Amount: ""}))
}
