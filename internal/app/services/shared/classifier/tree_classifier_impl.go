package classifier

import (
	"context"
	"errors"
	"fmt"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/app/models"
	"medirisk-service/internal/pkg/exceptions"
	"os"
	"slices"

	"github.com/goccy/go-json"
)

// treeModel is a decision tree exported from the training pipeline as JSON.
//
// An internal node either splits a numeric feature (value <= threshold goes
// left) or a categorical feature (value listed in "in" goes left). A leaf
// carries only a label.
type treeModel struct {
	Name    string    `json:"name"`
	Classes []string  `json:"classes"`
	Root    *treeNode `json:"root"`
}

type treeNode struct {
	Feature   string    `json:"feature,omitempty"`
	Threshold *float64  `json:"threshold,omitempty"`
	In        []string  `json:"in,omitempty"`
	Left      *treeNode `json:"left,omitempty"`
	Right     *treeNode `json:"right,omitempty"`
	Label     string    `json:"label,omitempty"`
}

type treeClassifier struct {
	model treeModel
}

func NewTreeClassifierFromFile(path string) (contracts.Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exceptions.ErrClassifierLoadModel(err, path)
	}
	return NewTreeClassifier(data)
}

func NewTreeClassifier(data []byte) (contracts.Classifier, error) {
	var model treeModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, exceptions.ErrClassifierInvalidModel(err, "cannot decode artifact")
	}
	if model.Root == nil {
		return nil, exceptions.ErrClassifierInvalidModel(nil, "missing root node")
	}
	if err := model.Root.validate(model.Classes, "root"); err != nil {
		return nil, exceptions.ErrClassifierInvalidModel(err, "malformed tree")
	}
	return &treeClassifier{model: model}, nil
}

func (c *treeClassifier) Predict(ctx context.Context, features models.PremiumFeatures) (string, error) {
	node := c.model.Root
	for !node.isLeaf() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		goLeft, err := node.goesLeft(features)
		if err != nil {
			return "", exceptions.ErrClassifierPredict(err)
		}
		if goLeft {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Label, nil
}

func (n *treeNode) isLeaf() bool {
	return n.Left == nil && n.Right == nil
}

func (n *treeNode) goesLeft(features models.PremiumFeatures) (bool, error) {
	if n.Threshold != nil {
		value, ok := features.Numeric(n.Feature)
		if !ok {
			return false, fmt.Errorf("unknown numeric feature %q", n.Feature)
		}
		return value <= *n.Threshold, nil
	}

	value, ok := features.Categorical(n.Feature)
	if !ok {
		return false, fmt.Errorf("unknown categorical feature %q", n.Feature)
	}
	return slices.Contains(n.In, value), nil
}

func (n *treeNode) validate(classes []string, path string) error {
	if n.isLeaf() {
		if n.Label == "" {
			return fmt.Errorf("%s: leaf without label", path)
		}
		if len(classes) > 0 && !slices.Contains(classes, n.Label) {
			return fmt.Errorf("%s: label %q is not a declared class", path, n.Label)
		}
		return nil
	}

	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("%s: split node needs both children", path)
	}
	if n.Feature == "" {
		return fmt.Errorf("%s: split node without feature", path)
	}

	emptyFeatures := models.PremiumFeatures{}
	switch {
	case n.Threshold != nil && len(n.In) > 0:
		return fmt.Errorf("%s: split node has both threshold and in", path)
	case n.Threshold != nil:
		if _, ok := emptyFeatures.Numeric(n.Feature); !ok {
			return fmt.Errorf("%s: %q is not a numeric feature", path, n.Feature)
		}
	case len(n.In) > 0:
		if _, ok := emptyFeatures.Categorical(n.Feature); !ok {
			return fmt.Errorf("%s: %q is not a categorical feature", path, n.Feature)
		}
	default:
		return errors.New(path + ": split node needs threshold or in")
	}

	if err := n.Left.validate(classes, path+".left"); err != nil {
		return err
	}
	return n.Right.validate(classes, path+".right")
}
