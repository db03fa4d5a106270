package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/playfulmath/uniformity/engine/math"
	"github.com/playfulmath/uniformity/engine/resources"
)

/**
 * @brief Loads Object File Format (.off) polyhedron models: an "OFF"
 * header line, a "vertices faces edges" count line, then one line per
 * vertex and one per face. Faces may carry an optional trailing colour
 * (3 or 4 components, either 0..1 floats or 0..255 ints). Comment
 * lines (#) and blank lines are skipped everywhere.
 */
type OFFLoader struct{}

// The colour faces get when the file does not specify one.
const defaultFaceColour uint32 = 0xCCCCCCFF

func (ol *OFFLoader) Load(path string, assetType resources.ResourceType, params interface{}) (*resources.Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	line, err := nextLine(scanner)
	if err != nil {
		return nil, fmt.Errorf("%s: missing OFF header", path)
	}
	if !strings.HasPrefix(line, "OFF") {
		return nil, fmt.Errorf("%s: not an OFF file", path)
	}

	line, err = nextLine(scanner)
	if err != nil {
		return nil, fmt.Errorf("%s: missing count line", path)
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%s: malformed count line %q", path, line)
	}
	vertexCount, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%s: bad vertex count: %w", path, err)
	}
	faceCount, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%s: bad face count: %w", path, err)
	}

	poly := &resources.Polyhedron{
		Vertices: make([]math.Vec3, vertexCount),
		Faces:    make([]resources.Face, faceCount),
	}

	for i := 0; i < vertexCount; i++ {
		line, err = nextLine(scanner)
		if err != nil {
			return nil, fmt.Errorf("%s: truncated at vertex %d", path, i)
		}
		v, err := parseVertex(line)
		if err != nil {
			return nil, fmt.Errorf("%s: vertex %d: %w", path, i, err)
		}
		poly.Vertices[i] = v
	}

	for i := 0; i < faceCount; i++ {
		line, err = nextLine(scanner)
		if err != nil {
			return nil, fmt.Errorf("%s: truncated at face %d", path, i)
		}
		face, err := parseFace(line, vertexCount)
		if err != nil {
			return nil, fmt.Errorf("%s: face %d: %w", path, i, err)
		}
		face.Normal = faceNormal(poly, face.Indices)
		poly.Faces[i] = face
	}

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	return &resources.Resource{
		Name:     strings.TrimSuffix(info.Name(), ".off"),
		FullPath: path,
		DataSize: uint64(info.Size()),
		Data:     poly,
	}, nil
}

func (ol *OFFLoader) Unload(*resources.Resource) error {
	return nil
}

// Advances to the next line that is neither blank nor a comment.
func nextLine(scanner *bufio.Scanner) (string, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("unexpected end of file")
}

func parseVertex(line string) (math.Vec3, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("expected 3 coordinates, got %q", line)
	}
	var coords [3]float32
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec3{}, err
		}
		coords[i] = float32(value)
	}
	return math.NewVec3(coords[0], coords[1], coords[2]), nil
}

func parseFace(line string, vertexCount int) (resources.Face, error) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return resources.Face{}, fmt.Errorf("empty face line")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return resources.Face{}, err
	}
	if n < 1 || len(fields) < 1+n {
		return resources.Face{}, fmt.Errorf("face declares %d indices, line has %d fields", n, len(fields)-1)
	}
	face := resources.Face{
		Indices: make([]int, n),
		Colour:  defaultFaceColour,
	}
	for i := 0; i < n; i++ {
		idx, err := strconv.Atoi(fields[1+i])
		if err != nil {
			return resources.Face{}, err
		}
		if idx < 0 || idx >= vertexCount {
			return resources.Face{}, fmt.Errorf("vertex index %d out of range", idx)
		}
		face.Indices[i] = idx
	}
	if colour, ok := parseColour(fields[1+n:]); ok {
		face.Colour = colour
	}
	return face, nil
}

// Faces may end with "r g b" or "r g b a", given either as 0..1 floats
// or 0..255 integers. Anything else leaves the default colour in place.
func parseColour(fields []string) (uint32, bool) {
	if len(fields) != 3 && len(fields) != 4 {
		return 0, false
	}
	channels := [4]uint32{0, 0, 0, 255}
	isFloat := false
	for _, f := range fields {
		if strings.ContainsAny(f, ".eE") {
			isFloat = true
			break
		}
	}
	for i, f := range fields {
		value, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, false
		}
		if isFloat {
			value *= 255.0
		}
		if value < 0 {
			value = 0
		} else if value > 255 {
			value = 255
		}
		channels[i] = uint32(value)
	}
	return channels[0]<<24 | channels[1]<<16 | channels[2]<<8 | channels[3], true
}

// A face's shading normal comes from its first three vertices. Faces
// that start with collinear points get the zero normal, same as any
// degenerate triangle.
func faceNormal(poly *resources.Polyhedron, indices []int) math.Vec3 {
	if len(indices) < 3 {
		return math.NewVec3Zero()
	}
	return math.FaceNormal(
		poly.Vertices[indices[0]],
		poly.Vertices[indices[1]],
		poly.Vertices[indices[2]],
	)
}
