package memories

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/RacoonMediaServer/rms-memories/internal/analysis"
	"github.com/RacoonMediaServer/rms-memories/internal/model"
	"github.com/RacoonMediaServer/rms-memories/internal/scan"
	"github.com/RacoonMediaServer/rms-memories/internal/slug"
	"github.com/RacoonMediaServer/rms-memories/internal/storage"
	"go-micro.dev/v4/logger"
)

type plannedItem struct {
	sourcePath string
	fileName   string
}

type plannedFolder struct {
	folder model.Folder
	items  []plannedItem
}

// plan assigns identifiers and builds manifest records in scan order
func (s *Service) plan(listing scan.Listing) []plannedFolder {
	folderIDs := slug.NewRegistry()
	itemIDs := slug.NewRegistry()

	result := make([]plannedFolder, 0, len(listing.Folders))
	for _, f := range listing.Folders {
		folderID := model.ID(folderIDs.Claim(slug.Make(f.Name)))
		log := logger.Fields(map[string]interface{}{
			"folder": folderID.String(),
		})

		folder := model.NewFolder(folderID, strings.TrimSpace(f.Name))
		pf := plannedFolder{}

		fileIDs := slug.NewRegistry()
		for i, fileName := range f.Files {
			title := analysis.NormalizeTitle(analysis.BaseName(fileName))
			base := title
			if title == "" {
				base = fmt.Sprintf("memory-%d", i+1)
				title = fmt.Sprintf("Memory %d", i+1)
			}

			fileID := model.ID(fileIDs.Claim(slug.Make(base)))
			outName := storage.ComposeFileName(fileID, analysis.Extension(fileName))
			sourcePath := filepath.Join(s.root, f.Name, fileName)
			mediaType := analysis.MediaType(fileName)

			folder.Add(model.Item{
				ID:      model.ID(itemIDs.Claim(model.MakeItemID(folderID, fileID).String())),
				Title:   title,
				Type:    mediaType,
				Src:     s.dir.PublicPath(folderID, outName),
				Alt:     fmt.Sprintf("%s - %s", f.Name, title),
				Context: s.resolveContext(log, mediaType, sourcePath, fileName),
			})
			pf.items = append(pf.items, plannedItem{sourcePath: sourcePath, fileName: outName})
		}

		pf.folder = *folder
		result = append(result, pf)
	}

	return result
}

// resolveContext prefers embedded metadata, capture time falls back to the date in the file name
func (s *Service) resolveContext(log logger.Logger, mediaType model.MediaType, sourcePath, fileName string) *model.Context {
	var ctx *model.Context
	if mediaType == model.MediaTypeImage {
		result := s.meta.Read(sourcePath)
		if result.Err != nil {
			if result.Found() {
				log.Logf(logger.DebugLevel, "Metadata of '%s' read partially: %s", fileName, result.Err)
			} else {
				log.Logf(logger.DebugLevel, "No metadata in '%s': %s", fileName, result.Err)
			}
		}
		ctx = result.Context()
	}

	if ctx == nil {
		ctx = &model.Context{}
	}
	if ctx.CapturedAt == "" {
		if date, ok := analysis.DateFromFileName(fileName); ok {
			ctx.CapturedAt = model.FormatTimestamp(date)
		}
	}

	return ctx.Compact()
}
