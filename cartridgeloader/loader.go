// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
)

// List of mapping IDs recognised by the loader.
const (
	MappingAuto = "AUTO"
	Mapping2K   = "2K"
	Mapping4K   = "4K"
	MappingFlat = "FLAT"
)

// Loader is used to specify the data to use when loading a program into the
// machine. It also permits the caller to specify the mapping of the data (if
// necessary. fingerprinting by size is enough for the supported mappings).
type Loader struct {
	// filename of data to load.
	Filename string

	// empty string or "AUTO" indicates automatic fingerprinting
	Mapping string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequence calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapping argument will be used to set the Mapping field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
//
// File extensions ".BIN", ".ROM" and ".A26" will set the Mapping field to
// "AUTO". File extensions ".2K" and ".4K" select the mapping of the same
// name. File extension ".PRG" selects the "FLAT" mapping.
//
// Alphabetic characters in file extensions can be in upper or lower case or a
// mixture of both.
func NewLoader(filename string, mapping string) Loader {
	cl := Loader{
		Filename: filename,
		Mapping:  MappingAuto,
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping != MappingAuto && mapping != "" {
		cl.Mapping = mapping
	} else {
		ext := strings.ToUpper(path.Ext(filename))
		switch ext {
		case ".BIN", ".ROM", ".A26":
			cl.Mapping = MappingAuto
		case ".2K", ".4K":
			cl.Mapping = ext[1:]
		case ".PRG":
			cl.Mapping = MappingFlat
		}
	}

	return cl
}

// NewLoaderFromData creates a Loader for data that is already in memory. The
// name argument is used as the filename.
func NewLoaderFromData(name string, data []byte, mapping string) Loader {
	cl := NewLoader(name, mapping)
	cl.Data = make([]byte, len(data))
	copy(cl.Data, data)
	return cl
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".A26", ".2K", ".4K", ".PRG"}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(cl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the data. Loader filenames with a valid schema will use that method
// to load the data. Currently supported schemes are HTTP and local files.
//
// If the Data field is already populated then nothing is loaded but the hash
// is still checked.
func (cl *Loader) Load() error {
	if len(cl.Data) == 0 {
		scheme := "file"

		url, err := url.Parse(cl.Filename)
		if err == nil {
			scheme = url.Scheme
		}

		switch scheme {
		case "http", "https":
			resp, err := http.Get(cl.Filename)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("%s (%s)", resp.Status, cl.Filename))
			}

			cl.Data, err = io.ReadAll(resp.Body)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}

		case "file", "":
			cl.Data, err = os.ReadFile(cl.Filename)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}

		default:
			return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
		}

		if len(cl.Data) == 0 {
			return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("no data in %s", cl.Filename))
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Hash = hash

	return nil
}
