package mysqlgorm

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/logging"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"go.uber.org/zap"
)

// GormComponent owns one *gorm.DB per named data source.
type GormComponent struct {
	*core.BaseComponent
	cfg *Config
	dbs map[string]*gorm.DB
}

func NewGormComponent(cfg *Config) *GormComponent {
	return &GormComponent{
		BaseComponent: core.NewBaseComponent(consts.COMPONENT_MYSQL_GORM, consts.COMPONENT_LOGGING),
		cfg:           cfg,
		dbs:           make(map[string]*gorm.DB),
	}
}

func (gc *GormComponent) Start(ctx context.Context) error {
	if err := gc.BaseComponent.Start(ctx); err != nil {
		return err
	}
	if gc.cfg == nil || !gc.cfg.Enabled {
		logging.Info(ctx, "mysql gorm component disabled, skip start")
		return nil
	}
	if len(gc.cfg.DataSources) == 0 {
		return fmt.Errorf("mysql gorm enabled but no data sources configured")
	}

	// Deterministic open order keeps startup logs diffable across restarts.
	names := make([]string, 0, len(gc.cfg.DataSources))
	for name := range gc.cfg.DataSources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		db, err := gc.openDataSource(ctx, name, gc.cfg.DataSources[name])
		if err != nil {
			gc.closeAll(ctx)
			return fmt.Errorf("open data source %s: %w", name, err)
		}
		gc.dbs[name] = db
		logging.Info(ctx, "mysql data source opened", zap.String("name", name))
	}
	return nil
}

func (gc *GormComponent) openDataSource(ctx context.Context, name string, dsCfg *DataSourceConfig) (*gorm.DB, error) {
	if dsCfg == nil {
		return nil, fmt.Errorf("nil data source config")
	}
	dsn := dsCfg.DSN
	if dsn == "" {
		dsn = buildDSN(dsCfg)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: dsCfg.SkipDefaultTransaction,
		PrepareStmt:            dsCfg.PrepareStmt,
		Logger:                 newZapGormLogger(gc.cfg.LogLevel, gc.cfg.SlowThreshold),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if dsCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(dsCfg.MaxOpenConns)
	}
	if dsCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(dsCfg.MaxIdleConns)
	}
	if dsCfg.ConnMaxLife > 0 {
		sqlDB.SetConnMaxLifetime(dsCfg.ConnMaxLife)
	}
	if dsCfg.ConnMaxIdle > 0 {
		sqlDB.SetConnMaxIdleTime(dsCfg.ConnMaxIdle)
	}

	if dsCfg.PingOnStart {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(pingCtx); err != nil {
			return nil, fmt.Errorf("ping %s: %w", name, err)
		}
	}
	return db, nil
}

func (gc *GormComponent) Stop(ctx context.Context) error {
	defer gc.BaseComponent.Stop(ctx)
	gc.closeAll(ctx)
	return nil
}

func (gc *GormComponent) closeAll(ctx context.Context) {
	for name, db := range gc.dbs {
		sqlDB, err := db.DB()
		if err != nil {
			logging.Warn(ctx, "get sql.DB for close failed", zap.String("name", name), zap.Error(err))
			continue
		}
		if err := sqlDB.Close(); err != nil {
			logging.Warn(ctx, "close data source failed", zap.String("name", name), zap.Error(err))
		}
	}
	gc.dbs = make(map[string]*gorm.DB)
}

func (gc *GormComponent) HealthCheck() error {
	if err := gc.BaseComponent.HealthCheck(); err != nil {
		return err
	}
	if gc.cfg == nil || !gc.cfg.Enabled {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for name, db := range gc.dbs {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("data source %s: %w", name, err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("data source %s: %w", name, err)
		}
	}
	return nil
}

// GetDB returns the named data source.
func (gc *GormComponent) GetDB(name string) (*gorm.DB, error) {
	db, ok := gc.dbs[name]
	if !ok {
		return nil, fmt.Errorf("data source %s not configured", name)
	}
	return db, nil
}

func buildDSN(cfg *DataSourceConfig) string {
	params := url.Values{}
	params.Set("charset", "utf8mb4")
	params.Set("parseTime", "true")
	params.Set("loc", "Local")
	for k, v := range cfg.Params {
		params.Set(k, v)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, params.Encode())
}

// zapGormLogger routes gorm's logger interface onto the shared zap logger.
type zapGormLogger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newZapGormLogger(level string, slow time.Duration) gormlogger.Interface {
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}
	return &zapGormLogger{level: parseGormLevel(level), slowThreshold: slow}
}

func parseGormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

func (l *zapGormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *zapGormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		logging.Info(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *zapGormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		logging.Warn(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *zapGormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		logging.Error(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *zapGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}
	switch {
	case err != nil && err != gorm.ErrRecordNotFound && l.level >= gormlogger.Error:
		logging.Error(ctx, "sql error", append(fields, zap.Error(err))...)
	case elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		logging.Warn(ctx, "slow sql", fields...)
	case l.level >= gormlogger.Info:
		logging.Debug(ctx, "sql trace", fields...)
	}
}
