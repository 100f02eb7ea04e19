package cli_test

import (
	"bytes"
	"context"
	"freecast-workers/src/application/cli"
	"freecast-workers/src/application/codec"
	"freecast-workers/src/application/codec/codecfakes"
	"freecast-workers/src/application/fetch"
	"freecast-workers/src/application/splitter"
	"freecast-workers/src/application/usecase/chunking"
	"freecast-workers/src/lib/working_dir"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("CLI", func() {
	const budget int64 = 1000000

	var (
		workingDir working_dir.WorkingDir
		server     *httptest.Server
		status     int

		fakeEncoder *codecfakes.FakeEncoder

		referenceSplitter chunking.ReferenceSplitter

		args     []string
		stdout   *bytes.Buffer
		stderr   *bytes.Buffer
		exitCode int
	)

	BeforeEach(func() {
		var err error
		workingDir, err = working_dir.NewWorkingDir(workingDirPath)
		Expect(err).NotTo(HaveOccurred())

		status = http.StatusOK
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("episode audio"))
		}))

		fakeDecoder := &codecfakes.FakeDecoder{}
		fakeDecoder.DecodeStub = func(path string) (codec.AudioSource, error) {
			return codec.AudioSource{Path: path, ByteSize: 3000000, Duration: 600 * time.Second}, nil
		}

		fakeEncoder = &codecfakes.FakeEncoder{}
		fakeEncoder.EncodeStub = func(_ context.Context, _ codec.AudioSource, _ time.Duration, _ time.Duration, outPath string) error {
			return os.WriteFile(outPath, []byte("chunk"), os.ModePerm)
		}

		fetcher := fetch.NewSelectFetcher(
			fetch.NewHTTPFetcher(server.Client(), "Mozilla/5.0 (test)", workingDir),
			fetch.NewLocalFetcher(),
		)
		referenceSplitter = chunking.NewReferenceSplitter(fetcher, splitter.NewFileSplitter(fakeDecoder, fakeEncoder))

		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
	})

	JustBeforeEach(func() {
		exitCode = cli.Run(context.Background(), args, stdout, stderr, referenceSplitter, budget)
	})

	AfterEach(func() {
		server.Close()
		_ = os.RemoveAll(workingDir.TempDir())
	})

	Describe("with a URL", func() {
		BeforeEach(func() {
			args = []string{server.URL + "/episode.mp3"}
		})

		It("prints one chunk path per line in order", func() {
			Expect(exitCode).To(Equal(0))
			Expect(stderr.String()).To(BeEmpty())

			lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
			Expect(lines).To(HaveLen(3))
			for i, line := range lines {
				Expect(filepath.Base(line)).To(MatchRegexp(`_part%d\.mp3$`, i+1))
			}
		})

		Describe("when the download is forbidden", func() {
			BeforeEach(func() {
				status = http.StatusForbidden
			})

			It("prints only the error and exits 1", func() {
				Expect(exitCode).To(Equal(1))
				Expect(stdout.String()).To(BeEmpty())
				Expect(stderr.String()).To(HavePrefix("Error: "))
				Expect(stderr.String()).To(ContainSubstring("Access forbidden"))
			})

			Describe("with logging captured", func() {
				var handler *memory.Handler

				BeforeEach(func() {
					handler = memory.New()
					log.SetHandler(handler)
				})

				AfterEach(func() {
					log.SetHandler(log.HandlerFunc(func(*log.Entry) error { return nil }))
				})

				It("reports the failure a single time", func() {
					Expect(strings.Count(stderr.String(), "Access forbidden")).To(Equal(1))
					for _, entry := range handler.Entries {
						Expect(entry.Level).To(BeNumerically("<", log.ErrorLevel), entry.Message)
					}
				})
			})
		})
	})

	Describe("with a local file that's missing", func() {
		BeforeEach(func() {
			args = []string{filepath.Join(workingDirPath, "nope.mp3")}
		})

		It("fails without encoding anything", func() {
			Expect(exitCode).To(Equal(1))
			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(HavePrefix("Error: "))
			Expect(fakeEncoder.EncodeCallCount()).To(BeZero())
		})
	})

	Describe("with no arguments", func() {
		BeforeEach(func() {
			args = []string{}
		})

		It("prints usage and exits 1", func() {
			Expect(exitCode).To(Equal(1))
			Expect(stderr.String()).To(ContainSubstring(cli.Usage))
			Expect(stdout.String()).To(BeEmpty())
		})
	})

	Describe("with too many arguments", func() {
		BeforeEach(func() {
			args = []string{"a.mp3", "b.mp3"}
		})

		It("prints usage and exits 1", func() {
			Expect(exitCode).To(Equal(1))
			Expect(stderr.String()).To(ContainSubstring(cli.Usage))
		})
	})
})
