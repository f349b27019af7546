package ingredient

import (
	"encoding/json"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		quantity string
		wantErr  error
	}{
		{"0", nil},
		{"0.001", nil},
		{"2.5", nil},
		{"1000", nil},
		{"999999999.999", nil},
		{"-0.001", ErrNegativeQuantity},
		{"-1", ErrNegativeQuantity},
		{"-250.75", ErrNegativeQuantity},
		{"1000000000", ErrQuantityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.quantity, func(t *testing.T) {
			err := ValidateQuantity(decimal.RequireFromString(tt.quantity))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNonNegativeQuantityRule(t *testing.T) {
	neg := decimal.NewFromInt(-3)

	assert.NoError(t, validation.Validate(decimal.NewFromFloat(1.5), NonNegativeQuantity))
	assert.ErrorIs(t, NonNegativeQuantity.Validate(neg), ErrNegativeQuantity)
	assert.ErrorIs(t, NonNegativeQuantity.Validate(&neg), ErrNegativeQuantity)
	assert.NoError(t, NonNegativeQuantity.Validate((*decimal.Decimal)(nil)))
	assert.Error(t, NonNegativeQuantity.Validate("3"))
}

func TestCreateIngredientRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr []string
	}{
		{"valid", `{"name":"Flour","quantity":2.5,"unit":"cups"}`, nil},
		{"zero quantity", `{"name":"Salt","quantity":0}`, nil},
		{"quantity as string", `{"name":"Salt","quantity":"0.25"}`, nil},
		{"negative quantity", `{"name":"Flour","quantity":-1}`, []string{"quantity"}},
		{"missing name", `{"quantity":1}`, []string{"name"}},
		{"unit too long", `{"name":"Flour","quantity":1,"unit":"` + strings.Repeat("u", 51) + `"}`, []string{"unit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateIngredientRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			for _, field := range tt.wantErr {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestUpdateIngredientRequest_ValidateRejectsNegativeQuantity(t *testing.T) {
	req := UpdateIngredientRequest{Name: "Butter", Quantity: decimal.NewFromInt(-5)}

	var errs validation.Errors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.ErrorIs(t, errs["quantity"], ErrNegativeQuantity)
}

func TestIngredient_IsValid(t *testing.T) {
	valid := Ingredient{Name: "Egg", Quantity: decimal.NewFromInt(2)}
	assert.NoError(t, valid.IsValid())

	noName := valid
	noName.Name = "  "
	assert.ErrorIs(t, noName.IsValid(), ErrInvalidName)

	negative := valid
	negative.Quantity = decimal.NewFromInt(-2)
	assert.ErrorIs(t, negative.IsValid(), ErrNegativeQuantity)
}
