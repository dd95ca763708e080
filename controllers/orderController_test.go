package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCustomerInfoAllValid(t *testing.T) {
	fieldErrors := validateCustomerInfo("Rahim Uddin", "01712345678", "Dhaka", "Mirpur", "House 12, Road 3")
	assert.Empty(t, fieldErrors)
}

func TestValidateCustomerInfoReportsFieldByField(t *testing.T) {
	fieldErrors := validateCustomerInfo("R", "12345", "", "", " ")

	assert.Contains(t, fieldErrors, "customerName")
	assert.Contains(t, fieldErrors, "phone")
	assert.Contains(t, fieldErrors, "district")
	assert.Contains(t, fieldErrors, "thana")
	assert.Contains(t, fieldErrors, "address")
	assert.Len(t, fieldErrors, 5)
}

func TestValidateCustomerInfoPhonePattern(t *testing.T) {
	valid := []string{"01712345678", "01987654321", "01311111111"}
	for _, phone := range valid {
		fieldErrors := validateCustomerInfo("Karim", phone, "Dhaka", "Uttara", "Addr")
		assert.NotContains(t, fieldErrors, "phone", "expected %s to be accepted", phone)
	}

	invalid := []string{
		"0171234567",     // too short
		"017123456789",   // too long
		"01212345678",    // bad operator digit
		"+8801712345678", // country code not accepted
		"abc",
		"",
	}
	for _, phone := range invalid {
		fieldErrors := validateCustomerInfo("Karim", phone, "Dhaka", "Uttara", "Addr")
		assert.Contains(t, fieldErrors, "phone", "expected %s to be rejected", phone)
	}
}

func TestValidateCustomerInfoTrimsWhitespace(t *testing.T) {
	fieldErrors := validateCustomerInfo("  a  ", "01712345678", "Dhaka", "Uttara", "Addr")
	assert.Contains(t, fieldErrors, "customerName")
}

func TestValidatePaymentMethod(t *testing.T) {
	assert.True(t, validatePaymentMethod("cod"))
	assert.True(t, validatePaymentMethod("bKash"))
	assert.True(t, validatePaymentMethod("NAGAD"))

	assert.False(t, validatePaymentMethod(""))
	assert.False(t, validatePaymentMethod("paypal"))
}
