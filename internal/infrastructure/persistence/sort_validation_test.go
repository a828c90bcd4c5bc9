package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", ValidateSortOrder("asc"))
	assert.Equal(t, "ASC", ValidateSortOrder(" ASC "))
	assert.Equal(t, "DESC", ValidateSortOrder("desc"))
	assert.Equal(t, "DESC", ValidateSortOrder(""))
	assert.Equal(t, "DESC", ValidateSortOrder("sideways"))
	assert.Equal(t, "DESC", ValidateSortOrder("asc; DROP TABLE devices"))
}

func TestValidateSortField(t *testing.T) {
	assert.Equal(t, "serial_number", ValidateSortField("serial_number", DeviceSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("", DeviceSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("manufacturing_cost", DeviceSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("id; DELETE FROM sales", SaleSortFields, "created_at"))
	assert.Equal(t, "last_login_at", ValidateSortField("last_login_at", UserSortFields, "created_at"))
}
