package trips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableCompanies(t *testing.T) {
	table := NewTable([]Trip{
		{Company: "Sun Taxi"},
		{Company: ""},
		{Company: "Flash Cab"},
		{Company: "Sun Taxi"},
	})

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, []string{"Flash Cab", "Sun Taxi"}, table.Companies())
	assert.True(t, table.HasCompany("Flash Cab"))
	assert.False(t, table.HasCompany("Blue Ribbon Taxi Association"))
	assert.False(t, table.HasCompany(""))

	companies := table.Companies()
	companies[0] = "changed"
	assert.Equal(t, "Flash Cab", table.Companies()[0])
}
