package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tabx/internal/dialect"
	"tabx/internal/table"
)

var (
	queryDSN    string
	queryDriver string
	queryLimit  int
)

var queryCmd = &cobra.Command{
	Use:   "query [sql]",
	Short: "Run a SQL query and emit the result set as TSV or CSV",
	Long: `query connects to a database, runs the given SELECT statement and
writes the result set through the normal output path. NULL values
become empty cells, matching how psql output is parsed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, driver, err := resolveConnection()
		if err != nil {
			return err
		}
		d := dialect.Get(driver)

		db, err := sql.Open(d.Driver(), dsn)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		query := args[0]
		if queryLimit > 0 {
			query = d.LimitRowQuery(query, queryLimit)
		}

		tbl, err := fetchTable(db, query)
		if err != nil {
			return err
		}
		return writeTable(tbl, os.Stdout)
	},
}

func init() {
	RootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVar(&queryDSN, "dsn", "", "Database Source Name (DSN)")
	queryCmd.Flags().StringVar(&queryDriver, "driver", "", "database driver (mysql, postgres, sqlserver, oracle)")
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0, "maximum number of rows to fetch (0 = unlimited)")

	viper.BindPFlag("database.dsn", queryCmd.Flags().Lookup("dsn"))
	viper.BindPFlag("database.driver", queryCmd.Flags().Lookup("driver"))
}

// resolveConnection picks the DSN and driver with flag > databases list
// > database.* keys precedence, auto-detecting the driver from the DSN
// when nothing names one.
func resolveConnection() (dsn, driver string, err error) {
	dsn = viper.GetString("database.dsn")
	driver = viper.GetString("database.driver")

	if dsn == "" {
		config, cfgErr := GetActiveDBConfig()
		if cfgErr != nil {
			return "", "", fmt.Errorf("no DSN given and %w", cfgErr)
		}
		dsn = config.DSN
		if driver == "" {
			driver = config.Driver
		}
	}

	if driver == "" {
		driver = dialect.DetectDriver(dsn)
	}
	return dsn, driver, nil
}

// fetchTable scans a result set into a validated table. Every value is
// rendered as a string; NULLs become empty cells.
func fetchTable(db *sql.DB, query string) (*table.Table, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var data [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		dest := make([]interface{}, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return table.NewValidated(cols, data)
}
