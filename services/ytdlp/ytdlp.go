package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tubedash/web-ui/services/negotiation"
	"github.com/urfave/cli"
	"github.com/webtor-io/lazymap"
)

const (
	PathFlag    = "yt-dlp-path"
	TempDirFlag = "yt-dlp-temp-dir"
)

const (
	DefaultPath   = "yt-dlp"
	audioFilename = "audio.mp3"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   PathFlag,
			Usage:  "yt-dlp executable",
			Value:  DefaultPath,
			EnvVar: "YT_DLP_PATH",
		},
		cli.StringFlag{
			Name:   TempDirFlag,
			Usage:  "directory for downloads in progress",
			EnvVar: "YT_DLP_TEMP_DIR",
		},
	)
}

// Runner executes a command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

type YtDlp struct {
	path    string
	tempDir string
	run     Runner
	infos   *lazymap.LazyMap[*negotiation.RawInfo]
}

func New(c *cli.Context) *YtDlp {
	return NewYtDlp(c.String(PathFlag), c.String(TempDirFlag), execRun)
}

func NewYtDlp(path string, tempDir string, run Runner) *YtDlp {
	if path == "" {
		path = DefaultPath
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	log.Infof("using yt-dlp executable %v", path)
	return &YtDlp{
		path:    path,
		tempDir: tempDir,
		run:     run,
		infos: lazymap.New[*negotiation.RawInfo](&lazymap.Config{
			Expire:      1 * time.Minute,
			ErrorExpire: 10 * time.Second,
		}),
	}
}

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, "%v failed: %v", name, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// Info extracts metadata of a single video without downloading it.
func (s *YtDlp) Info(ctx context.Context, url string) (*negotiation.RawInfo, error) {
	if url == "" {
		return nil, errors.New("empty url")
	}
	return s.infos.Get(url, func() (*negotiation.RawInfo, error) {
		return s.extract(ctx, url)
	})
}

func (s *YtDlp) extract(ctx context.Context, url string) (*negotiation.RawInfo, error) {
	out, err := s.run(ctx, s.path, "-J", "--no-playlist", url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract info")
	}
	var raw negotiation.RawInfo
	if err = json.Unmarshal(out, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode yt-dlp output")
	}
	return &raw, nil
}

// IsAudio reports whether the selector asks for an audio-only download.
func IsAudio(formatID string) bool {
	return strings.Contains(formatID, "audio")
}

// Filename returns the attachment name for the selector.
func Filename(formatID string) string {
	if IsAudio(formatID) {
		return audioFilename
	}
	return "video_" + strings.ReplaceAll(formatID, "/", "_") + ".mp4"
}

// Download fetches the selected format into a fresh directory.
// The returned File must be closed to remove it.
func (s *YtDlp) Download(ctx context.Context, url string, formatID string) (*File, error) {
	if url == "" || formatID == "" {
		return nil, errors.New("url and format id are required")
	}
	dir := filepath.Join(s.tempDir, "tubedash-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create download dir")
	}
	name := Filename(formatID)
	args := []string{"-q", "--no-playlist", "-f", formatID}
	if IsAudio(formatID) {
		args = append(args, "-x", "--audio-format", "mp3",
			"-o", filepath.Join(dir, strings.TrimSuffix(name, ".mp3")+".%(ext)s"))
	} else {
		args = append(args, "-o", filepath.Join(dir, name))
	}
	args = append(args, url)
	if _, err := s.run(ctx, s.path, args...); err != nil {
		_ = os.RemoveAll(dir)
		return nil, errors.Wrap(err, "failed to download")
	}
	f := &File{
		Path:     filepath.Join(dir, name),
		Filename: name,
		dir:      dir,
	}
	st, err := os.Stat(f.Path)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "no output produced for format %v", formatID)
	}
	f.Size = st.Size()
	return f, nil
}
