package migrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	bizConfig "github.com/S3b4sB0t3r0/evg-server/internal/config"
	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/logging"
	mg "github.com/S3b4sB0t3r0/evg-server/internal/infra/components/mysqlgorm"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"go.uber.org/zap"
)

// Component executes migrations/*.sql in lexical order when the app starts.
// Idempotency lives in the SQL itself (CREATE TABLE IF NOT EXISTS etc.).
type Component struct {
	*core.BaseComponent
	GormComp *mg.GormComponent `infra:"dep:mysql_gorm"`
	cfg      *bizConfig.MigrateConfig
	dsName   string
}

func NewComponent(dsName string, cfg *bizConfig.MigrateConfig) *Component {
	return &Component{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_MIGRATE, consts.COMPONENT_LOGGING),
		cfg:           cfg,
		dsName:        dsName,
	}
}

func (c *Component) Start(ctx context.Context) error {
	if err := c.BaseComponent.Start(ctx); err != nil {
		return err
	}
	if c.cfg == nil || !c.cfg.Enabled {
		logging.Info(ctx, "db migrations disabled, skip")
		return nil
	}
	gdb, err := c.GormComp.GetDB(c.dsName)
	if err != nil {
		return fmt.Errorf("get gorm db %s failed: %w", c.dsName, err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}

	files, err := listSQLFiles(c.cfg.Dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		for _, stmt := range strings.Split(string(b), ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("exec %s failed: %w", f, err)
			}
		}
		logging.Info(ctx, "migration applied", zap.String("file", filepath.Base(f)))
	}
	return nil
}

func listSQLFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
