//go:build integration
// +build integration

package tests

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	dbadapter "teamboard/internal/adapter/db"
	"teamboard/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

// entityTables are dropped in this order before every test.
var entityTables = []string{"users", "shops", "channels"}

// IntegrationSuiteBase opens the database named by DB_DRIVER. SQLite runs in a
// per-suite temp file; MySQL runs in a dedicated "<MYSQL_DATABASE>_test"
// schema that is dropped when the suite ends.
type IntegrationSuiteBase struct {
	suite.Suite

	DB *sqlx.DB

	mysqlAdmin  *sqlx.DB
	mysqlSchema string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	conf := config.LoadConfig()
	if os.Getenv("DB_DRIVER") == "" {
		conf.DbDriver = config.DriverSQLite
	}

	switch conf.DbDriver {
	case config.DriverSQLite:
		conf.SqlitePath = filepath.Join(s.T().TempDir(), "teamboard_test.db")
	case config.DriverMySQL:
		s.createMySQLSchema(conf)
		conf.DbName = s.mysqlSchema
	}

	db, err := dbadapter.ConnectDB(conf)
	s.Require().NoError(err)
	s.DB = db
}

func (s *IntegrationSuiteBase) createMySQLSchema(conf *config.Config) {
	admin := *conf
	admin.DbName = ""
	if user := os.Getenv("MYSQL_ROOT_USER"); user != "" {
		admin.DbUser = user
		admin.DbPassword = os.Getenv("MYSQL_ROOT_PASSWORD")
	}

	db, err := dbadapter.ConnectDB(&admin)
	if err != nil {
		s.T().Skipf("mysql unavailable at %s:%s: %v", conf.DbHost, conf.DbPort, err)
	}
	s.mysqlAdmin = db
	s.mysqlSchema = conf.DbName + "_test"

	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", s.mysqlSchema))
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.mysqlAdmin == nil {
		return
	}
	if strings.HasSuffix(s.mysqlSchema, "_test") {
		_, err := s.mysqlAdmin.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.mysqlSchema))
		s.Require().NoError(err)
	}
	s.Require().NoError(s.mysqlAdmin.Close())
}

// ResetDatabase rebuilds the entity tables with the sample rows, so ids start
// at 1 in every test.
func (s *IntegrationSuiteBase) ResetDatabase() {
	ctx := context.Background()
	for _, table := range entityTables {
		_, err := s.DB.ExecContext(ctx, "DROP TABLE IF EXISTS "+table)
		s.Require().NoError(err)
	}
	s.Require().NoError(dbadapter.Migrate(ctx, s.DB))
	s.Require().NoError(dbadapter.SeedSampleData(ctx, s.DB))
}
