package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/LouYuanbo1/tenderparser/internal/config"
	"github.com/LouYuanbo1/tenderparser/internal/domain/entity"
	"github.com/LouYuanbo1/tenderparser/internal/domain/model"
	"github.com/LouYuanbo1/tenderparser/internal/infra/persistence"
	"github.com/LouYuanbo1/tenderparser/internal/infra/persistence/csvfile"
	"github.com/LouYuanbo1/tenderparser/internal/infra/persistence/es"
	"github.com/LouYuanbo1/tenderparser/internal/infra/persistence/sqlite"
)

var (
	// ErrUnsupportedFormat 输出既不是.csv/.db文件, 也不是es://地址
	ErrUnsupportedFormat = errors.New("unsupported output format (supported: .csv, .db, es://host:port/index, ess://host:port/index)")
	// ErrNoRecords 没有采集到任何记录, 不调用写出器
	ErrNoRecords = errors.New("no tender data collected")
)

type format int

const (
	formatCSV format = iota
	formatSQLite
	formatEs
)

func detect(output string) (format, error) {
	if scheme, _, ok := strings.Cut(output, "://"); ok {
		switch strings.ToLower(scheme) {
		case "es", "ess":
			if u, err := url.Parse(output); err == nil && u.Host != "" {
				return formatEs, nil
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, output)
	}

	switch strings.ToLower(filepath.Ext(output)) {
	case ".csv":
		return formatCSV, nil
	case ".db":
		return formatSQLite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, output)
	}
}

// Validate 只检查输出参数, 没有任何副作用
func Validate(output string) error {
	_, err := detect(output)
	return err
}

// Select 根据输出参数选择唯一的写出器, 此时不创建任何文件
func Select(output string, cfg *config.Config, logger *slog.Logger) (persistence.Writer, error) {
	f, err := detect(output)
	if err != nil {
		return nil, err
	}
	switch f {
	case formatCSV:
		return csvfile.InitCsvWriter(output, logger), nil
	case formatSQLite:
		return sqlite.InitSqliteWriter(output, logger), nil
	default:
		return selectEs(output, cfg, logger)
	}
}

// selectEs es://user:pass@host:9200/index, ess://表示使用https
func selectEs(output string, cfg *config.Config, logger *slog.Logger) (persistence.Writer, error) {
	u, err := url.Parse(output)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, output)
	}
	esCfg := *cfg
	scheme := "http"
	if strings.EqualFold(u.Scheme, "ess") {
		scheme = "https"
	}
	esCfg.Elasticsearch.Address = scheme + "://" + u.Host
	if u.User != nil {
		esCfg.Elasticsearch.Username = u.User.Username()
		if p, ok := u.User.Password(); ok {
			esCfg.Elasticsearch.Password = p
		}
	}
	index := strings.Trim(u.Path, "/")

	client, err := es.InitTypedEsClient[*model.TenderDoc](&esCfg, index, logger)
	if err != nil {
		return nil, err
	}
	return es.InitEsWriter(client, logger), nil
}

// Export 将全部记录交给写出器
func Export(ctx context.Context, w persistence.Writer, records []entity.Tender) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	return w.Write(ctx, records)
}
