// Package pomxml provides the default POM descriptor parser.
//
// It decodes Maven POM XML documents into raw [maven.Project] values. The
// parser is deliberately literal: it preserves partial coordinates and
// missing scopes exactly as the document declared them, leaving inheritance
// and defaulting to the resolver's normalization pass.
package pomxml

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/gavel-build/gavel/pkg/errors"
	"github.com/gavel-build/gavel/pkg/maven"
)

// Parser implements [maven.POMParser] on top of encoding/xml.
type Parser struct{}

// New creates a Parser.
func New() *Parser { return &Parser{} }

// Parse decodes a POM document. Ill-formed XML fails with INVALID_POM.
func (p *Parser) Parse(data []byte) (*maven.Project, error) {
	var doc pomProject
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPOM, err, "unparseable POM document")
	}

	project := &maven.Project{
		Coordinate: maven.Coordinate{
			GroupID:    strings.TrimSpace(doc.GroupID),
			ArtifactID: strings.TrimSpace(doc.ArtifactID),
			Version:    strings.TrimSpace(doc.Version),
			Packaging:  strings.TrimSpace(doc.Packaging),
		},
		Deps:       depMap(doc.Dependencies),
		Properties: doc.Properties.Entries,
	}
	if project.Properties == nil {
		project.Properties = make(map[string]string)
	}

	if doc.Parent != nil {
		parent := maven.Coordinate{
			GroupID:    strings.TrimSpace(doc.Parent.GroupID),
			ArtifactID: strings.TrimSpace(doc.Parent.ArtifactID),
			Version:    strings.TrimSpace(doc.Parent.Version),
		}
		project.Parent = &parent
	}

	if doc.DependencyManagement != nil {
		project.DepManagement = depMap(doc.DependencyManagement.Dependencies)
	}

	return project, nil
}

// depMap keys dependencies by (groupId, artifactId). The first declaration
// of a key wins, mirroring the resolver's first-writer-wins merges.
func depMap(deps []pomDependency) map[maven.DepKey]maven.Dependency {
	out := make(map[maven.DepKey]maven.Dependency, len(deps))
	for _, d := range deps {
		dep := maven.Dependency{
			Coordinate: maven.Coordinate{
				GroupID:    strings.TrimSpace(d.GroupID),
				ArtifactID: strings.TrimSpace(d.ArtifactID),
				Version:    strings.TrimSpace(d.Version),
				Classifier: strings.TrimSpace(d.Classifier),
			},
			Scope: strings.TrimSpace(d.Scope),
		}
		key := dep.Key()
		if _, exists := out[key]; !exists {
			out[key] = dep
		}
	}
	return out
}

type pomProject struct {
	XMLName              xml.Name        `xml:"project"`
	GroupID              string          `xml:"groupId"`
	ArtifactID           string          `xml:"artifactId"`
	Version              string          `xml:"version"`
	Packaging            string          `xml:"packaging"`
	Parent               *pomParent      `xml:"parent"`
	Dependencies         []pomDependency `xml:"dependencies>dependency"`
	DependencyManagement *pomDepMgmt     `xml:"dependencyManagement"`
	Properties           pomProperties   `xml:"properties"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
	Classifier string `xml:"classifier"`
}

type pomDepMgmt struct {
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

// pomProperties collects the free-form <properties> block, whose child
// element names are the property keys.
type pomProperties struct {
	Entries map[string]string
}

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.Entries = make(map[string]string)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &el); err != nil {
				return err
			}
			p.Entries[el.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			if el.Name == start.Name {
				return nil
			}
		}
	}
}
