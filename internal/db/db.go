package db

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Connection owns a single database session. It is safe to share between
// goroutines, but statements run one at a time.
type Connection struct {
	settings Settings
	logger   *zap.Logger
	failFast bool
	exit     func(int)
	stderr   io.Writer

	mu      sync.Mutex
	dialect Dialect
	db      *sqlx.DB
	conn    *sqlx.Conn
	opens   int
	pending []BoundParameter

	lastInsertID    string
	hasLastInsertID bool
}

type Option func(*Connection)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Connection) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFailFast restores crash-only behavior: on any connection or statement
// error the driver message goes to stderr and the process exits with status 1.
func WithFailFast() Option {
	return func(c *Connection) {
		c.failFast = true
	}
}

// NewConnection connects immediately using settings.
func NewConnection(ctx context.Context, settings Settings, opts ...Option) (*Connection, error) {
	c := &Connection{
		settings: settings,
		logger:   zap.NewNop(),
		exit:     os.Exit,
		stderr:   os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.EnsureConnected(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Connection) Settings() Settings {
	return c.settings
}

func (c *Connection) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// EnsureConnected opens a session if there is none. It does nothing when
// already connected.
func (c *Connection) EnsureConnected(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ensureConnected(ctx)
}

func (c *Connection) ensureConnected(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}
	if err := c.connect(ctx); err != nil {
		return c.fail(err)
	}
	return nil
}

func (c *Connection) connect(ctx context.Context) error {
	s := c.settings
	connErr := func(err error) error {
		return &ConnectionError{Driver: s.DriverName(), Host: s.Host, Database: s.DBName, Err: err}
	}

	dialect, err := lookupDialect(s.DriverName())
	if err != nil {
		return connErr(err)
	}
	initCommands, err := dialect.InitCommands(s)
	if err != nil {
		return connErr(err)
	}

	handle, err := dialect.Open(s)
	if err != nil {
		return connErr(err)
	}
	handle.SetMaxOpenConns(1)
	dbx := sqlx.NewDb(handle, dialect.Name())

	conn, err := dbx.Connx(ctx)
	if err != nil {
		dbx.Close()
		return connErr(err)
	}
	for _, command := range initCommands {
		if _, err := conn.ExecContext(ctx, command); err != nil {
			conn.Close()
			dbx.Close()
			return connErr(fmt.Errorf("init command %q: %w", command, err))
		}
	}

	c.dialect = dialect
	c.db = dbx
	c.conn = conn
	c.opens++

	c.logger.Info("database connected",
		zap.String("driver", s.DriverName()),
		zap.String("host", s.Host),
		zap.String("dbname", s.DBName))
	return nil
}

// Close ends the session. Closing a closed Connection is a no-op; a later
// Execute reconnects.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}

	err := c.conn.Close()
	if dbErr := c.db.Close(); err == nil {
		err = dbErr
	}
	c.conn = nil
	c.db = nil
	c.lastInsertID, c.hasLastInsertID = "", false

	c.logger.Info("database disconnected", zap.String("dbname", c.settings.DBName))
	if err != nil {
		return fmt.Errorf("close connection: %w", err)
	}
	return nil
}

// LastInsertID reports the id generated by the most recent INSERT on this
// session. The boolean is false when there was none or the driver cannot
// report it.
func (c *Connection) LastInsertID() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastInsertID, c.hasLastInsertID
}

// Execute runs one statement. Reads (select, show) return a *RowSet in the
// given mode, FetchAssoc by default; writes (insert, update, delete) return
// AffectedCount; everything else returns Empty.
func (c *Connection) Execute(ctx context.Context, query string, params map[string]any, mode ...FetchMode) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() { c.pending = nil }()

	fetch := FetchAssoc
	if len(mode) > 0 {
		fetch = mode[0]
	}

	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	execID := uuid.NewString()
	verb := Verb(query)
	start := time.Now()

	result, err := c.run(ctx, query, params, fetch)
	if err != nil {
		c.logger.Warn("statement failed",
			zap.String("exec_id", execID),
			zap.String("verb", verb),
			zap.Error(err))
		return nil, c.fail(err)
	}

	c.logger.Debug("statement executed",
		zap.String("exec_id", execID),
		zap.String("verb", verb),
		zap.Int("params", len(params)),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

func (c *Connection) run(ctx context.Context, query string, params map[string]any, fetch FetchMode) (Result, error) {
	c.pending = Bind(params)

	compiled, args, err := c.compile(query)
	if err != nil {
		return nil, newStatementError(OpBind, query, err)
	}

	stmt, err := c.conn.PreparexContext(ctx, compiled)
	if err != nil {
		return nil, newStatementError(OpPrepare, query, err)
	}
	defer stmt.Close()

	switch Classify(query) {
	case StatementRead:
		rows, err := stmt.QueryxContext(ctx, args...)
		if err != nil {
			return nil, newStatementError(OpExecute, query, err)
		}
		set, err := fetchRows(rows, fetch)
		if err != nil {
			return nil, newStatementError(OpFetch, query, err)
		}
		return set, nil

	case StatementWrite:
		res, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			return nil, newStatementError(OpExecute, query, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, newStatementError(OpFetch, query, err)
		}
		if Verb(query) == "insert" {
			c.recordInsertID(res)
		}
		return AffectedCount(affected), nil

	default:
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return nil, newStatementError(OpExecute, query, err)
		}
		return Empty{}, nil
	}
}

// compile rewrites :name placeholders into the dialect's bindvars, taking
// values from the pending bind list. Without parameters the text is used
// as is.
func (c *Connection) compile(query string) (string, []any, error) {
	if len(c.pending) == 0 {
		return query, nil, nil
	}

	values := make(map[string]any, len(c.pending))
	for _, p := range c.pending {
		values[p.Name()] = p.Value.Any()
	}
	return compileNamed(query, c.dialect.Syntax(), sqlx.BindType(c.dialect.Name()), values)
}

type insertIDResult interface {
	LastInsertId() (int64, error)
}

func (c *Connection) recordInsertID(res insertIDResult) {
	id, err := res.LastInsertId()
	if err != nil {
		c.lastInsertID, c.hasLastInsertID = "", false
		return
	}
	c.lastInsertID, c.hasLastInsertID = strconv.FormatInt(id, 10), true
}

func (c *Connection) fail(err error) error {
	if c.failFast {
		c.logger.Error("terminating after database error", zap.Error(err))
		fmt.Fprintln(c.stderr, driverMessage(err))
		c.exit(1)
	}
	return err
}
