package imprimeurs_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	imprimeurs "github.com/antonomaz/imprimeurs/pkg"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/antonomaz/imprimeurs/pkg/ent/summary"
)

type fakeResolver struct {
	listed bool
	err    error
}

func (f *fakeResolver) ListIDs() error {
	f.listed = true
	return f.err
}

func (f *fakeResolver) Resolve(ctx context.Context) (*summary.Summary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &summary.Summary{Processed: 3, Written: 2, Empty: 1}, nil
}

type fakeTransformer struct{}

func (fakeTransformer) Transform() (*summary.Summary, error) {
	sum := &summary.Summary{Processed: 2, Written: 1}
	sum.Skip("line 3", summary.ReasonShortRow, nil)
	return sum, nil
}

type fakeBuilder struct{ built bool }

func (f *fakeBuilder) Build() error {
	f.built = true
	return nil
}

var _ = Describe("Imprimeurs", func() {
	cfg := config.New(config.OptJobsNum(8))
	imp := imprimeurs.New(cfg)

	Describe("New", func() {
		It("keeps the configuration", func() {
			Expect(imp.GetConfig().JobsNum).To(Equal(8))
		})
	})

	Describe("Resolve", func() {
		It("returns the summary of the resolver", func() {
			sum, err := imp.Resolve(context.Background(), &fakeResolver{})
			Expect(err).ToNot(HaveOccurred())
			Expect(sum.Written).To(Equal(2))
			Expect(sum.Empty).To(Equal(1))
		})

		It("returns errors of the resolver", func() {
			boom := errors.New("boom")
			_, err := imp.Resolve(context.Background(), &fakeResolver{err: boom})
			Expect(err).To(MatchError(boom))
		})
	})

	Describe("ListIDs", func() {
		It("delegates to the resolver", func() {
			r := &fakeResolver{}
			Expect(imp.ListIDs(r)).To(Succeed())
			Expect(r.listed).To(BeTrue())
		})
	})

	Describe("Transform", func() {
		It("returns the summary of the transformer", func() {
			sum, err := imp.Transform(fakeTransformer{})
			Expect(err).ToNot(HaveOccurred())
			Expect(sum.Reasons()).To(HaveKeyWithValue(summary.ReasonShortRow, 1))
		})
	})

	Describe("Build", func() {
		It("delegates to the builder", func() {
			b := &fakeBuilder{}
			Expect(imp.Build(b)).To(Succeed())
			Expect(b.built).To(BeTrue())
		})
	})
})
