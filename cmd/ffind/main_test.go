package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/logandonley/font-finder/pkg/fontfind"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ffind", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = new(bytes.Buffer)
		rootCmd.SetOut(out)
		rootCmd.SetErr(out)
	})

	AfterEach(func() {
		rootCmd.SetArgs(nil)
		Expect(findCmd.Flags().Set("style", "")).To(Succeed())
		Expect(findCmd.Flags().Set("backend", "auto")).To(Succeed())
	})

	It("should list the platform font directories", func() {
		rootCmd.SetArgs([]string{"dirs"})
		Expect(rootCmd.Execute()).To(Succeed())
		Expect(out.String()).NotTo(BeEmpty())
	})

	It("should reject an unknown backend", func() {
		rootCmd.SetArgs([]string{"find", "Arial", "--backend", "nope"})
		Expect(rootCmd.Execute()).To(MatchError(ContainSubstring("unknown backend")))
	})

	It("should report a missing font as an error", func() {
		rootCmd.SetArgs([]string{"find", "zz-no-such-font-family", "--backend", "fallback"})
		Expect(rootCmd.Execute()).To(MatchError(errNoMatch))
	})

	It("should require a family", func() {
		rootCmd.SetArgs([]string{"find"})
		Expect(rootCmd.Execute()).To(HaveOccurred())
	})

	Describe("newResolver", func() {
		It("should build the requested fallback backend", func() {
			resolver, err := newResolver("fallback", logr.Discard())
			Expect(err).NotTo(HaveOccurred())
			Expect(resolver.Backend()).To(Equal(fontfind.Fallback))
		})

		It("should always produce a resolver in auto mode", func() {
			tempDir, err := os.MkdirTemp("", "ffind-test-*")
			Expect(err).NotTo(HaveOccurred())
			defer os.RemoveAll(tempDir)

			// A PATH without fc-match makes fontconfig unavailable
			DeferCleanup(os.Setenv, "PATH", os.Getenv("PATH"))
			Expect(os.Setenv("PATH", filepath.Join(tempDir, "bin"))).To(Succeed())

			resolver, err := newResolver("auto", logr.Discard())
			Expect(err).NotTo(HaveOccurred())
			Expect(resolver.Backend()).To(Equal(fontfind.Fallback))

			_, err = newResolver("native", logr.Discard())
			Expect(err).To(MatchError(fontfind.ErrInit))
		})
	})
})
