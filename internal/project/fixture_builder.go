package project

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/wpblocks/internal/filesystem"
)

// FixtureBuilder helps create boilerplate checkouts for tests
type FixtureBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
}

// NewFixtureBuilder creates a new FixtureBuilder
func NewFixtureBuilder(root string) *FixtureBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	return &FixtureBuilder{fs: fs, root: root}
}

// WithConfig writes config/plugin.config.js naming textDomain
func (fb *FixtureBuilder) WithConfig(textDomain string) *FixtureBuilder {
	content := fmt.Sprintf(`/**
 * Plugin configuration variables used in block generation.
 */

module.exports = {
	pluginName: 'Multi Blocks Boilerplate',
	phpNamespace: 'MultiBlocksBoilerplate',
	textdomain: '%s',
	$schema: 'https://schemas.wp.org/trunk/block.json',
	apiVersion: 3,
	version: '0.1.0',
	blocksNamespace: '%s',
};
`, textDomain, textDomain)
	fb.fs.AddFile(filepath.Join(fb.root, ConfigFile), []byte(content))
	return fb
}

// WithEntryFile writes <textDomain>.php with the boilerplate header
func (fb *FixtureBuilder) WithEntryFile(textDomain string) *FixtureBuilder {
	content := fmt.Sprintf(`<?php
/**
 * Plugin Name:       Multi Blocks Boilerplate
 * Description:       A boilerplate for creating multiple blocks in WordPress.
 * Version:           1.0.0
 * Requires at least: 6.4
 * Requires PHP:      8.1
 * Author:            NicoMarcico
 * Author URI:        https://github.com/NicoMarcico
 * License:           GPL-2.0-or-later
 * License URI:       https://www.gnu.org/licenses/gpl-2.0.html
 * Text Domain:       %s
 *
 * @package MultiBlocksBoilerplate
 */

namespace MultiBlocksBoilerplate;

if ( ! defined( 'ABSPATH' ) ) {
	exit; // Exit if accessed directly.
}

function register_blocks() {
	$blocks_dir = plugin_dir_path( __FILE__ ) . 'build/blocks/';
	foreach ( glob( $blocks_dir . '*', GLOB_ONLYDIR ) as $block_folder ) {
		register_block_type( $block_folder );
	}
}
add_action( 'init', __NAMESPACE__ . '\register_blocks' );
`, textDomain)
	fb.fs.AddFile(filepath.Join(fb.root, textDomain+EntryFileExt), []byte(content))
	return fb
}

// WithPHPCS writes phpcs.xml.dist with the given text_domain element value
func (fb *FixtureBuilder) WithPHPCS(textDomain string) *FixtureBuilder {
	content := fmt.Sprintf(`<?xml version="1.0"?>
<ruleset name="WordPress Coding Standards for Plugins">
	<rule ref="WordPress-Core"/>
	<rule ref="WordPress.WP.I18n">
		<properties>
			<property name="text_domain" type="array">
				<!-- Replace with your plugin's textdomain -->
				<element value="%s"/>
			</property>
		</properties>
	</rule>
</ruleset>
`, textDomain)
	fb.fs.AddFile(filepath.Join(fb.root, PHPCSFile), []byte(content))
	return fb
}

// WithTemplate adds src/templates/<name>/index.js
func (fb *FixtureBuilder) WithTemplate(name string) *FixtureBuilder {
	fb.fs.AddFile(filepath.Join(fb.root, TemplatesDir, name, "index.js"), []byte("module.exports = {};\n"))
	return fb
}

// WithFile adds an arbitrary file relative to the root
func (fb *FixtureBuilder) WithFile(rel, content string) *FixtureBuilder {
	fb.fs.AddFile(filepath.Join(fb.root, rel), []byte(content))
	return fb
}

// Boilerplate adds the config, entry file and phpcs ruleset of a fresh
// checkout identified by textDomain
func (fb *FixtureBuilder) Boilerplate(textDomain string) *FixtureBuilder {
	return fb.WithConfig(textDomain).WithEntryFile(textDomain).WithPHPCS(textDomain)
}

// Build returns the mock filesystem
func (fb *FixtureBuilder) Build() *filesystem.MockFileSystem {
	return fb.fs
}
