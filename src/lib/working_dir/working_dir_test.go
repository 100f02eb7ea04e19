package working_dir_test

import (
	"freecast-workers/src/lib/working_dir"
	"os"
	"path/filepath"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("WorkingDir", func() {
	var workingDir working_dir.WorkingDir

	BeforeEach(func() {
		var err error
		workingDir, err = working_dir.NewWorkingDir(workingDirPath)
		Expect(err).NotTo(HaveOccurred())
	})

	It("uses an absolute root with a tmp dir inside", func() {
		Expect(filepath.IsAbs(workingDir.Root())).To(BeTrue())
		Expect(workingDir.TempDir()).To(Equal(filepath.Join(workingDir.Root(), "tmp")))

		info, err := os.Stat(workingDir.TempDir())
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	It("defaults to a directory under the OS temp dir", func() {
		defaultDir, err := working_dir.NewWorkingDir("")
		Expect(err).NotTo(HaveOccurred())
		Expect(defaultDir.Root()).To(Equal(filepath.Join(os.TempDir(), "freecast")))
	})

	Describe("temp files", func() {
		It("creates the file in the temp dir and removes it", func() {
			file, remove, err := workingDir.CreateTempFile("freecast-*.mp3")
			Expect(err).NotTo(HaveOccurred())
			Expect(file.Close()).To(Succeed())

			Expect(filepath.Dir(file.Name())).To(Equal(workingDir.TempDir()))
			Expect(filepath.Ext(file.Name())).To(Equal(".mp3"))

			remove()
			_, err = os.Stat(file.Name())
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("doesn't mind removing twice", func() {
			file, remove, err := workingDir.CreateTempFile("freecast-*")
			Expect(err).NotTo(HaveOccurred())
			Expect(file.Close()).To(Succeed())

			remove()
			Expect(remove).NotTo(Panic())
		})
	})
})
