// Package sample generates fake tabular data, mainly for exercising the
// converters and downstream pipelines without a real database.
package sample

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v6"

	"tabx/internal/table"
)

// Headers is the fixed column set of generated tables.
var Headers = []string{"id", "name", "email", "phone", "company", "city"}

// Generate produces a validated table with rows of fake data. A
// non-zero seed makes the output reproducible. onProgress, when set, is
// called once per generated row.
func Generate(rows int, seed int64, onProgress func()) (*table.Table, error) {
	// gofakeit picks a random seed when given 0.
	faker := gofakeit.New(seed)

	data := make([][]string, 0, rows)
	for i := 0; i < rows; i++ {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			faker.Name(),
			faker.Email(),
			faker.Phone(),
			faker.Company(),
			faker.City(),
		})
		if onProgress != nil {
			onProgress()
		}
	}

	return table.NewValidated(Headers, data)
}
