package config_test

import (
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/antonomaz/imprimeurs/pkg/ent/tei"
)

var _ = Describe("Config", func() {
	Describe("New", func() {
		It("keeps the values of the first run as defaults", func() {
			cfg := config.New()
			Expect(cfg.Endpoint).To(Equal("https://data.idref.fr/sparql"))
			Expect(cfg.IDColumn).To(Equal(2))
			Expect(cfg.IDsFile).To(Equal("Liste_IL_MAZ.tsv"))
			Expect(cfg.IDsTableFile).To(Equal("Liste_IL_MAZ2.tsv"))
			Expect(cfg.EnrichedFile).To(Equal("base_imprimeurs_sparql.tsv"))
			Expect(cfg.ProfilesFile).To(Equal("base_imprimeurs_joined.csv"))
			Expect(cfg.CorpusDir).To(Equal("Mazarinades"))
			Expect(cfg.TEIDir).To(Equal("imprimeurs_tei"))
			Expect(cfg.NoteExclusions).To(Equal([]string{"Cotinet, Arnoul"}))
			Expect(cfg.Cities).To(HaveLen(18))
			Expect(cfg.Cities["Paris"]).To(Equal("geonames:2988507"))
			Expect(cfg.Editor.ID).To(Equal("ZC"))
			Expect(cfg.ChangeDate).To(Equal("2022-07-10"))
			Expect(cfg.RequestTimeout).To(Equal(30 * time.Second))
			Expect(cfg.JobsNum).To(Equal(4))
			Expect(cfg.Placeholder).To(BeTrue())
		})

		It("uses options for setup", func() {
			cfg := config.New(
				config.OptWorkDir("/tmp/imprimeurs"),
				config.OptJobsNum(0),
				config.OptIDColumn(1),
				config.OptNoCache(true),
				config.OptEditor(tei.Editor{ID: "AB"}),
				config.OptPlaceholder(false),
			)
			Expect(cfg.WorkDir).To(Equal("/tmp/imprimeurs"))
			Expect(cfg.JobsNum).To(Equal(1))
			Expect(cfg.IDColumn).To(Equal(1))
			Expect(cfg.NoCache).To(BeTrue())
			Expect(cfg.Assembler().Editor.ID).To(Equal("AB"))
			Expect(cfg.Assembler().Placeholder).To(BeFalse())
		})
	})

	Describe("Path", func() {
		It("resolves files relative to the work directory", func() {
			cfg := config.New(config.OptWorkDir("/data"))
			Expect(cfg.Path("a.tsv")).To(Equal(filepath.Join("/data", "a.tsv")))
			Expect(cfg.Path("/b.tsv")).To(Equal("/b.tsv"))
			Expect(cfg.Path("")).To(Equal(""))
		})
	})
})
