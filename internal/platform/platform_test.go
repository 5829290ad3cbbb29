package platform_test

import (
	"os"

	"github.com/logandonley/font-finder/internal/platform"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Platform", func() {
	var (
		tempDir string
		manager platform.Manager
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "platform-test-*")
		Expect(err).NotTo(HaveOccurred())

		// Set up environment for testing
		DeferCleanup(os.Setenv, "HOME", os.Getenv("HOME"))
		os.Setenv("HOME", tempDir)
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	Context("Linux Manager", func() {
		BeforeEach(func() {
			manager = platform.ForOS("linux")
		})

		It("should return the font directories in priority order", func() {
			Expect(manager.FontDirs()).To(Equal([]string{
				"/usr/share/fonts",
				"/usr/local/share/fonts",
				"/usr/share/fonts/truetype",
				"/usr/local/share/fonts/truetype",
				"/system/fonts",
			}))
		})

		It("should return a fresh slice on every call", func() {
			dirs := manager.FontDirs()
			dirs[0] = "/tmp/changed"
			Expect(manager.FontDirs()[0]).To(Equal("/usr/share/fonts"))
		})

		It("should name fc-match", func() {
			Expect(manager.FcMatch()).To(Equal("fc-match"))
		})
	})

	Context("Darwin Manager", func() {
		BeforeEach(func() {
			manager = platform.ForOS("darwin")
		})

		It("should return system folders before the user folder", func() {
			dirs := manager.FontDirs()
			Expect(dirs).To(HaveLen(3))
			Expect(dirs[0]).To(Equal("/System/Library/Fonts"))
			Expect(dirs[1]).To(Equal("/Library/Fonts"))
			Expect(dirs[2]).To(HavePrefix(tempDir))
			Expect(dirs[2]).To(HaveSuffix("Library/Fonts"))
		})
	})

	Context("Unknown OS", func() {
		It("should fall back to the linux layout", func() {
			Expect(platform.ForOS("freebsd").FontDirs()).To(ContainElement("/usr/local/share/fonts"))
		})
	})
})
